// File: session/input.go
// Typed wrappers for the "input" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/input"
)

func (s *Session) InputPerformActions(ctx context.Context, params input.PerformActionsParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, input.MethodPerformActions, params)
}

func (s *Session) InputReleaseActions(ctx context.Context, contextID string) (sessionEmptyResult, error) {
	params := input.ReleaseActionsParameters{Context: contextID}
	return invoke[sessionEmptyResult](ctx, s, input.MethodReleaseActions, params)
}

func (s *Session) InputSetFiles(ctx context.Context, params input.SetFilesParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, input.MethodSetFiles, params)
}
