// File: session/session_cmd.go
// Typed wrappers for the "session" module's own commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/sessioncmd"
)

// SessionStatus reports whether the remote end is ready to create a
// new session.
func (s *Session) SessionStatus(ctx context.Context) (sessioncmd.StatusResult, error) {
	return invoke[sessioncmd.StatusResult](ctx, s, sessioncmd.MethodStatus, sessioncmd.EmptyParams{})
}

// SessionEnd issues session.end over the BiDi connection itself (as
// opposed to Session.Close, which also tears down the local transport
// and bootstrap HTTP session).
func (s *Session) SessionEnd(ctx context.Context) (sessioncmd.EmptyResult, error) {
	return invoke[sessioncmd.EmptyResult](ctx, s, sessioncmd.MethodEnd, sessioncmd.EmptyParams{})
}

// SessionSubscribe issues session.subscribe for the given event names
// and (optionally) contexts. Prefer Session.Subscribe, which also
// registers the local handler; call this directly only to broaden an
// existing local subscription's wire scope.
func (s *Session) SessionSubscribe(ctx context.Context, events []string, contexts []string) (sessioncmd.SubscribeResult, error) {
	params := sessioncmd.SubscriptionRequest{Events: events, Contexts: contexts}
	return invoke[sessioncmd.SubscribeResult](ctx, s, sessioncmd.MethodSubscribe, params)
}

// SessionUnsubscribeByID issues session.unsubscribe referencing prior
// subscriptions by their server-assigned ids.
func (s *Session) SessionUnsubscribeByID(ctx context.Context, subscriptionIDs []string) (sessioncmd.EmptyResult, error) {
	params := sessioncmd.UnsubscribeParameters{Subscriptions: subscriptionIDs}
	return invoke[sessioncmd.EmptyResult](ctx, s, sessioncmd.MethodUnsubscribe, params)
}

// SessionUnsubscribeByEvents issues session.unsubscribe referencing
// prior subscriptions by event name and context pair, the legacy form
// kept alongside the by-id form for callers that never captured a
// subscription id.
func (s *Session) SessionUnsubscribeByEvents(ctx context.Context, events []string, contexts []string) (sessioncmd.EmptyResult, error) {
	params := sessioncmd.UnsubscribeParameters{Events: events, Contexts: contexts}
	return invoke[sessioncmd.EmptyResult](ctx, s, sessioncmd.MethodUnsubscribe, params)
}
