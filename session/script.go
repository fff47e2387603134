// File: session/script.go
// Typed wrappers for the "script" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/script"
)

func (s *Session) ScriptAddPreloadScript(ctx context.Context, params script.AddPreloadScriptParameters) (script.AddPreloadScriptResult, error) {
	return invoke[script.AddPreloadScriptResult](ctx, s, script.MethodAddPreloadScript, params)
}

func (s *Session) ScriptCallFunction(ctx context.Context, params script.CallFunctionParameters) (script.EvaluateResult, error) {
	return invoke[script.EvaluateResult](ctx, s, script.MethodCallFunction, params)
}

func (s *Session) ScriptDisown(ctx context.Context, params script.DisownParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, script.MethodDisown, params)
}

func (s *Session) ScriptEvaluate(ctx context.Context, params script.EvaluateParameters) (script.EvaluateResult, error) {
	return invoke[script.EvaluateResult](ctx, s, script.MethodEvaluate, params)
}

func (s *Session) ScriptGetRealms(ctx context.Context, params script.GetRealmsParameters) (script.GetRealmsResult, error) {
	return invoke[script.GetRealmsResult](ctx, s, script.MethodGetRealms, params)
}

func (s *Session) ScriptRemovePreloadScript(ctx context.Context, scriptID string) (sessionEmptyResult, error) {
	params := script.RemovePreloadScriptParameters{Script: scriptID}
	return invoke[sessionEmptyResult](ctx, s, script.MethodRemovePreloadScript, params)
}
