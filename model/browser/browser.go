// File: model/browser/browser.go
// Package browser is the wire schema for the W3C BiDi "browser"
// module: the whole-browser surface (client windows, user contexts).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Field shapes follow original_source/src/model/browser.rs.
package browser

import "github.com/momentics/webdriverbidi-go/model/common"

const (
	MethodClose                = "browser.close"
	MethodCreateUserContext    = "browser.createUserContext"
	MethodGetClientWindows     = "browser.getClientWindows"
	MethodGetUserContexts      = "browser.getUserContexts"
	MethodRemoveUserContext    = "browser.removeUserContext"
	MethodSetClientWindowState = "browser.setClientWindowState"
)

// ClientWindowState is the window placement enum.
type ClientWindowState string

const (
	WindowFullscreen ClientWindowState = "fullscreen"
	WindowMaximized  ClientWindowState = "maximized"
	WindowMinimized  ClientWindowState = "minimized"
	WindowNormal     ClientWindowState = "normal"
)

type ClientWindowInfo struct {
	Active       bool              `json:"active"`
	ClientWindow string            `json:"clientWindow"`
	Height       uint64            `json:"height"`
	State        ClientWindowState `json:"state"`
	Width        uint64            `json:"width"`
	X            int64             `json:"x"`
	Y            int64             `json:"y"`

	Extensible common.Extensible `json:"-"`
}

type UserContextInfo struct {
	UserContext string `json:"userContext"`

	Extensible common.Extensible `json:"-"`
}

// ProxyConfiguration mirrors the capability-negotiation proxy shape;
// left loosely typed since only session.new/createUserContext embed
// it and neither cares about its internals beyond pass-through.
type ProxyConfiguration map[string]any

// UserPromptHandler maps prompt type to handling strategy.
type UserPromptHandler map[string]string

type CloseParams struct{}

type CreateUserContextParameters struct {
	AcceptInsecureCerts   *bool              `json:"acceptInsecureCerts,omitempty"`
	Proxy                 ProxyConfiguration `json:"proxy,omitempty"`
	UnhandledPromptBehavior UserPromptHandler `json:"unhandledPromptBehavior,omitempty"`
}

type GetClientWindowsResult struct {
	ClientWindows []ClientWindowInfo `json:"clientWindows"`

	Extensible common.Extensible `json:"-"`
}

type GetUserContextsResult struct {
	UserContexts []UserContextInfo `json:"userContexts"`

	Extensible common.Extensible `json:"-"`
}

type RemoveUserContextParams struct {
	UserContext string `json:"userContext"`
}

type SetClientWindowStateParams struct {
	ClientWindow string            `json:"clientWindow"`
	State        ClientWindowState `json:"state,omitempty"`
	Width        *uint64           `json:"width,omitempty"`
	Height       *uint64           `json:"height,omitempty"`
	X            *int64            `json:"x,omitempty"`
	Y            *int64            `json:"y,omitempty"`
}
