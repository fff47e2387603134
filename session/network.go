// File: session/network.go
// Typed wrappers for the "network" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/network"
)

func (s *Session) NetworkAddIntercept(ctx context.Context, params network.AddInterceptParams) (network.AddInterceptResult, error) {
	return invoke[network.AddInterceptResult](ctx, s, network.MethodAddIntercept, params)
}

func (s *Session) NetworkRemoveIntercept(ctx context.Context, intercept string) (sessionEmptyResult, error) {
	params := network.RemoveInterceptParams{Intercept: intercept}
	return invoke[sessionEmptyResult](ctx, s, network.MethodRemoveIntercept, params)
}

func (s *Session) NetworkContinueRequest(ctx context.Context, params network.ContinueRequestParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, network.MethodContinueRequest, params)
}

func (s *Session) NetworkContinueResponse(ctx context.Context, params network.ContinueResponseParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, network.MethodContinueResponse, params)
}

func (s *Session) NetworkContinueWithAuth(ctx context.Context, params network.ContinueWithAuthParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, network.MethodContinueWithAuth, params)
}

func (s *Session) NetworkFailRequest(ctx context.Context, request string) (sessionEmptyResult, error) {
	params := network.FailRequestParams{Request: request}
	return invoke[sessionEmptyResult](ctx, s, network.MethodFailRequest, params)
}

func (s *Session) NetworkProvideResponse(ctx context.Context, params network.ProvideResponseParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, network.MethodProvideResponse, params)
}

func (s *Session) NetworkSetCacheBehavior(ctx context.Context, params network.SetCacheBehaviorParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, network.MethodSetCacheBehavior, params)
}

func (s *Session) NetworkAddDataCollector(ctx context.Context, params network.AddDataCollectorParams) (network.AddDataCollectorResult, error) {
	return invoke[network.AddDataCollectorResult](ctx, s, network.MethodAddDataCollector, params)
}

func (s *Session) NetworkRemoveDataCollector(ctx context.Context, collector string) (sessionEmptyResult, error) {
	params := network.RemoveDataCollectorParams{Collector: collector}
	return invoke[sessionEmptyResult](ctx, s, network.MethodRemoveDataCollector, params)
}

func (s *Session) NetworkGetData(ctx context.Context, params network.GetDataParams) (network.GetDataResult, error) {
	return invoke[network.GetDataResult](ctx, s, network.MethodGetData, params)
}

func (s *Session) NetworkDisownData(ctx context.Context, params network.DisownDataParams) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, network.MethodDisownData, params)
}
