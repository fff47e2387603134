// File: session/browser.go
// Typed wrappers for the "browser" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/browser"
)

func (s *Session) BrowserClose(ctx context.Context) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, browser.MethodClose, browser.CloseParams{})
}

func (s *Session) BrowserCreateUserContext(ctx context.Context, params browser.CreateUserContextParameters) (browser.UserContextInfo, error) {
	return invoke[browser.UserContextInfo](ctx, s, browser.MethodCreateUserContext, params)
}

func (s *Session) BrowserGetClientWindows(ctx context.Context) (browser.GetClientWindowsResult, error) {
	return invoke[browser.GetClientWindowsResult](ctx, s, browser.MethodGetClientWindows, struct{}{})
}

func (s *Session) BrowserGetUserContexts(ctx context.Context) (browser.GetUserContextsResult, error) {
	return invoke[browser.GetUserContextsResult](ctx, s, browser.MethodGetUserContexts, struct{}{})
}

func (s *Session) BrowserRemoveUserContext(ctx context.Context, userContext string) (sessionEmptyResult, error) {
	params := browser.RemoveUserContextParams{UserContext: userContext}
	return invoke[sessionEmptyResult](ctx, s, browser.MethodRemoveUserContext, params)
}

func (s *Session) BrowserSetClientWindowState(ctx context.Context, params browser.SetClientWindowStateParams) (browser.ClientWindowInfo, error) {
	return invoke[browser.ClientWindowInfo](ctx, s, browser.MethodSetClientWindowState, params)
}
