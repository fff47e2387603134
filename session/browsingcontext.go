// File: session/browsingcontext.go
// Typed wrappers for the "browsingContext" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/browsingcontext"
)

func (s *Session) BrowsingContextActivate(ctx context.Context, context_ string) (sessionEmptyResult, error) {
	params := browsingcontext.ActivateParams{Context: context_}
	return invoke[sessionEmptyResult](ctx, s, browsingcontext.MethodActivate, params)
}

func (s *Session) BrowsingContextCaptureScreenshot(ctx context.Context, params browsingcontext.CaptureScreenshotParams) (browsingcontext.CaptureScreenshotResult, error) {
	return invoke[browsingcontext.CaptureScreenshotResult](ctx, s, browsingcontext.MethodCaptureScreenshot, params)
}

func (s *Session) BrowsingContextClose(ctx context.Context, params browsingcontext.CloseParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, browsingcontext.MethodClose, params)
}

func (s *Session) BrowsingContextCreate(ctx context.Context, params browsingcontext.CreateParams) (browsingcontext.CreateResult, error) {
	return invoke[browsingcontext.CreateResult](ctx, s, browsingcontext.MethodCreate, params)
}

func (s *Session) BrowsingContextGetTree(ctx context.Context, params browsingcontext.GetTreeParams) (browsingcontext.GetTreeResult, error) {
	return invoke[browsingcontext.GetTreeResult](ctx, s, browsingcontext.MethodGetTree, params)
}

func (s *Session) BrowsingContextHandleUserPrompt(ctx context.Context, params browsingcontext.HandleUserPromptParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, browsingcontext.MethodHandleUserPrompt, params)
}

func (s *Session) BrowsingContextLocateNodes(ctx context.Context, params browsingcontext.LocateNodesParams) (browsingcontext.LocateNodesResult, error) {
	return invoke[browsingcontext.LocateNodesResult](ctx, s, browsingcontext.MethodLocateNodes, params)
}

func (s *Session) BrowsingContextNavigate(ctx context.Context, params browsingcontext.NavigateParams) (browsingcontext.NavigateResult, error) {
	return invoke[browsingcontext.NavigateResult](ctx, s, browsingcontext.MethodNavigate, params)
}

func (s *Session) BrowsingContextPrint(ctx context.Context, params browsingcontext.PrintParams) (browsingcontext.PrintResult, error) {
	return invoke[browsingcontext.PrintResult](ctx, s, browsingcontext.MethodPrint, params)
}

func (s *Session) BrowsingContextReload(ctx context.Context, params browsingcontext.ReloadParams) (browsingcontext.NavigateResult, error) {
	return invoke[browsingcontext.NavigateResult](ctx, s, browsingcontext.MethodReload, params)
}

func (s *Session) BrowsingContextSetViewport(ctx context.Context, params browsingcontext.SetViewportParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, browsingcontext.MethodSetViewport, params)
}

func (s *Session) BrowsingContextTraverseHistory(ctx context.Context, params browsingcontext.TraverseHistoryParams) (browsingcontext.TraverseHistoryResult, error) {
	return invoke[browsingcontext.TraverseHistoryResult](ctx, s, browsingcontext.MethodTraverseHistory, params)
}
