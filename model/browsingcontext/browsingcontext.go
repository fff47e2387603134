// File: model/browsingcontext/browsingcontext.go
// Package browsingcontext is the wire schema for the W3C BiDi
// "browsingContext" module: tabs, windows, and frames.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Field shapes follow original_source/src/model/browsing_context.rs;
// the long tail of rarely-touched optional fields is carried in each
// result/event's Extensible bag (spec §4.1/§9) rather than hand-typed,
// per SPEC_FULL.md's "extensible bag for the long tail" note.
package browsingcontext

import "github.com/momentics/webdriverbidi-go/model/common"

// Method name constants, one per command the module defines.
const (
	MethodActivate           = "browsingContext.activate"
	MethodCaptureScreenshot  = "browsingContext.captureScreenshot"
	MethodClose              = "browsingContext.close"
	MethodCreate             = "browsingContext.create"
	MethodGetTree            = "browsingContext.getTree"
	MethodHandleUserPrompt   = "browsingContext.handleUserPrompt"
	MethodLocateNodes        = "browsingContext.locateNodes"
	MethodNavigate           = "browsingContext.navigate"
	MethodPrint              = "browsingContext.print"
	MethodReload             = "browsingContext.reload"
	MethodSetViewport        = "browsingContext.setViewport"
	MethodTraverseHistory    = "browsingContext.traverseHistory"
)

// Event method name constants.
const (
	EventContextCreated      = "browsingContext.contextCreated"
	EventContextDestroyed    = "browsingContext.contextDestroyed"
	EventDomContentLoaded    = "browsingContext.domContentLoaded"
	EventDownloadWillBegin   = "browsingContext.downloadWillBegin"
	EventFragmentNavigated   = "browsingContext.fragmentNavigated"
	EventHistoryUpdated      = "browsingContext.historyUpdated"
	EventLoad                = "browsingContext.load"
	EventNavigationAborted   = "browsingContext.navigationAborted"
	EventNavigationCommitted = "browsingContext.navigationCommitted"
	EventNavigationFailed    = "browsingContext.navigationFailed"
	EventNavigationStarted   = "browsingContext.navigationStarted"
	EventUserPromptClosed    = "browsingContext.userPromptClosed"
	EventUserPromptOpened    = "browsingContext.userPromptOpened"
)

// ReadinessState is the load-wait strategy navigate/reload accept.
type ReadinessState string

const (
	ReadinessNone        ReadinessState = "none"
	ReadinessInteractive ReadinessState = "interactive"
	ReadinessComplete    ReadinessState = "complete"
)

// --- params ---

type ActivateParams struct {
	Context string `json:"context"`
}

type CaptureScreenshotParams struct {
	Context string `json:"context"`
	Origin  string `json:"origin,omitempty"`
	Format  *ImageFormat `json:"format,omitempty"`
	Clip    any    `json:"clip,omitempty"`
}

type ImageFormat struct {
	Type    string  `json:"type"`
	Quality float64 `json:"quality,omitempty"`
}

type CloseParams struct {
	Context       string `json:"context"`
	PromptUnload  bool   `json:"promptUnload,omitempty"`
}

type CreateParams struct {
	Type            string  `json:"type"` // "tab" | "window"
	ReferenceContext string `json:"referenceContext,omitempty"`
	Background      bool    `json:"background,omitempty"`
	UserContext     string  `json:"userContext,omitempty"`
}

type GetTreeParams struct {
	MaxDepth *int   `json:"maxDepth,omitempty"`
	Root     string `json:"root,omitempty"`
}

type HandleUserPromptParams struct {
	Context  string  `json:"context"`
	Accept   *bool   `json:"accept,omitempty"`
	UserText *string `json:"userText,omitempty"`
}

type LocateNodesParams struct {
	Context        string   `json:"context"`
	Locator        any      `json:"locator"`
	MaxNodeCount   *int     `json:"maxNodeCount,omitempty"`
	SerializationOptions any `json:"serializationOptions,omitempty"`
	StartNodes     []any    `json:"startNodes,omitempty"`
}

type NavigateParams struct {
	Context string         `json:"context"`
	URL     string         `json:"url"`
	Wait    ReadinessState `json:"wait,omitempty"`
}

type PrintParams struct {
	Context             string  `json:"context"`
	Background          bool    `json:"background,omitempty"`
	Margin              any     `json:"margin,omitempty"`
	Orientation         string  `json:"orientation,omitempty"`
	Page                any     `json:"page,omitempty"`
	PageRanges          []string `json:"pageRanges,omitempty"`
	Scale               float64 `json:"scale,omitempty"`
	ShrinkToFit         bool    `json:"shrinkToFit,omitempty"`
}

type ReloadParams struct {
	Context             string         `json:"context"`
	IgnoreCache         bool           `json:"ignoreCache,omitempty"`
	Wait                ReadinessState `json:"wait,omitempty"`
}

type SetViewportParams struct {
	Context           string   `json:"context,omitempty"`
	Viewport          *Viewport `json:"viewport"`
	DevicePixelRatio  *float64 `json:"devicePixelRatio,omitempty"`
	UserContexts      []string `json:"userContexts,omitempty"`
}

type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type TraverseHistoryParams struct {
	Context string `json:"context"`
	Delta   int    `json:"delta"`
}

// --- results ---

// Info describes one browsing context in a getTree result, grounded
// on original_source's model::browsing_context::Info.
type Info struct {
	Children        []Info  `json:"children,omitempty"`
	ClientWindow    string  `json:"clientWindow,omitempty"`
	Context         string  `json:"context"`
	OriginalOpener  *string `json:"originalOpener,omitempty"`
	URL             string  `json:"url"`
	UserContext     string  `json:"userContext"`
	Parent          *string `json:"parent,omitempty"`

	Extensible common.Extensible `json:"-"`
}

type CaptureScreenshotResult struct {
	Data string `json:"data"`

	Extensible common.Extensible `json:"-"`
}

type CreateResult struct {
	Context string `json:"context"`

	Extensible common.Extensible `json:"-"`
}

type GetTreeResult struct {
	Contexts []Info `json:"contexts"`

	Extensible common.Extensible `json:"-"`
}

type LocateNodesResult struct {
	Nodes []any `json:"nodes"`

	Extensible common.Extensible `json:"-"`
}

// NavigateResult is returned by both navigate and reload; Navigation
// is null when the navigation was a fragment-only change.
type NavigateResult struct {
	Navigation *string `json:"navigation"`
	URL        string  `json:"url"`

	Extensible common.Extensible `json:"-"`
}

type PrintResult struct {
	Data string `json:"data"`

	Extensible common.Extensible `json:"-"`
}

type TraverseHistoryResult struct {
	Extensible common.Extensible `json:"-"`
}

// --- events ---

type NavigationInfo struct {
	Context    string  `json:"context"`
	Navigation *string `json:"navigation"`
	Timestamp  uint64  `json:"timestamp"`
	URL        string  `json:"url"`

	Extensible common.Extensible `json:"-"`
}

type ContextCreatedEvent = Info
type ContextDestroyedEvent = Info

type NavigationEvent = NavigationInfo // DomContentLoaded, Load, FragmentNavigated, NavigationCommitted, NavigationStarted, NavigationAborted, NavigationFailed

type HistoryUpdatedEvent struct {
	Context string `json:"context"`
	URL     string `json:"url"`

	Extensible common.Extensible `json:"-"`
}

type DownloadWillBeginEvent struct {
	Context    string `json:"context"`
	Navigation string `json:"navigation"`
	SuggestedFilename string `json:"suggestedFilename"`

	Extensible common.Extensible `json:"-"`
}

type UserPromptType string

type UserPromptOpenedEvent struct {
	Context  string `json:"context"`
	Handler  string `json:"handler,omitempty"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	DefaultValue string `json:"defaultValue,omitempty"`

	Extensible common.Extensible `json:"-"`
}

type UserPromptClosedEvent struct {
	Context  string  `json:"context"`
	Accepted bool    `json:"accepted"`
	Type     string  `json:"type"`
	UserText *string `json:"userText,omitempty"`

	Extensible common.Extensible `json:"-"`
}
