// File: model/sessioncmd/sessioncmd.go
// Package sessioncmd is the wire schema for the W3C BiDi "session"
// module: status, new, end, subscribe, unsubscribe.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Method-name strings and result shapes are fixed by
// original_source/src/commands/session.rs's define_command!
// instantiations; field shapes follow original_source/src/model/session.rs.
package sessioncmd

import "github.com/momentics/webdriverbidi-go/model/common"

// Method name constants, one per define_command! instantiation in the
// original's src/commands/session.rs.
const (
	MethodStatus       = "session.status"
	MethodNew          = "session.new"
	MethodEnd          = "session.end"
	MethodSubscribe    = "session.subscribe"
	MethodUnsubscribe  = "session.unsubscribe"
)

// EmptyParams is sent by commands that take no arguments.
type EmptyParams struct{}

// EmptyResult is returned by commands whose result carries nothing.
type EmptyResult struct {
	Extensible common.Extensible `json:"-"`
}

// StatusResult answers "is this remote end ready".
type StatusResult struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`

	Extensible common.Extensible `json:"-"`
}

// NewParameters requests a new session with the given capabilities.
// Capabilities is left as a raw object since spec.md treats it
// opaquely and the exact shape is owned by bootstrap.CapabilitiesRequest.
type NewParameters struct {
	Capabilities map[string]any `json:"capabilities"`
}

// NewResult mirrors the negotiated session/capabilities pair the HTTP
// bootstrap already returns; exposed here too since session.new may
// also be issued over an already-open BiDi-only connection.
type NewResult struct {
	SessionID    string         `json:"sessionId"`
	Capabilities map[string]any `json:"capabilities"`

	Extensible common.Extensible `json:"-"`
}

// SubscriptionRequest names the events (and optionally the contexts)
// to start receiving events for.
type SubscriptionRequest struct {
	Events     []string `json:"events"`
	Contexts   []string `json:"contexts,omitempty"`
	UserContexts []string `json:"userContexts,omitempty"`
}

// SubscribeResult returns the server-assigned subscription id.
type SubscribeResult struct {
	Subscription string `json:"subscription"`

	Extensible common.Extensible `json:"-"`
}

// UnsubscribeParameters references prior subscriptions, either by
// event+context pair or by subscription id (one or the other).
type UnsubscribeParameters struct {
	Events        []string `json:"events,omitempty"`
	Contexts      []string `json:"contexts,omitempty"`
	Subscriptions []string `json:"subscriptions,omitempty"`
}

// UserPromptHandlerType is the enum governing automatic prompt
// handling negotiated at session.new time.
type UserPromptHandlerType string

const (
	PromptHandlerAccept       UserPromptHandlerType = "accept"
	PromptHandlerDismiss      UserPromptHandlerType = "dismiss"
	PromptHandlerIgnore       UserPromptHandlerType = "ignore"
)
