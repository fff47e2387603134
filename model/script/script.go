// File: model/script/script.go
// Package script is the wire schema for the W3C BiDi "script" module:
// realm introspection, preload scripts, and function/expression
// evaluation with a structured local/remote value system.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Field shapes follow original_source/src/model/script.rs. RemoteValue
// is recursive through NodeRemoteValue.Value -> NodeProperties.Children
// -> []NodeRemoteValue; the original boxes that edge to keep the Rust
// enum's size bounded, so NodeProperties is carried behind a pointer
// here for the same reason (spec §9's "recursive serialization" note).
package script

import "github.com/momentics/webdriverbidi-go/model/common"

const (
	MethodAddPreloadScript    = "script.addPreloadScript"
	MethodCallFunction        = "script.callFunction"
	MethodDisown              = "script.disown"
	MethodEvaluate            = "script.evaluate"
	MethodGetRealms           = "script.getRealms"
	MethodRemovePreloadScript = "script.removePreloadScript"
)

const (
	EventMessage        = "script.message"
	EventRealmCreated   = "script.realmCreated"
	EventRealmDestroyed = "script.realmDestroyed"
)

type Channel = string
type Handle = string
type InternalId = string
type PreloadScript = string
type Realm = string
type SharedId = string

// ResultOwnership governs whether the remote end retains a handle.
type ResultOwnership string

const (
	OwnershipRoot ResultOwnership = "root"
	OwnershipNone ResultOwnership = "none"
)

// RealmType enumerates the realm kinds getRealms can filter on.
type RealmType string

const (
	RealmWindow         RealmType = "window"
	RealmDedicatedWorker RealmType = "dedicated-worker"
	RealmSharedWorker   RealmType = "shared-worker"
	RealmServiceWorker  RealmType = "service-worker"
	RealmWorker         RealmType = "worker"
	RealmPaintWorklet   RealmType = "paint-worklet"
	RealmAudioWorklet   RealmType = "audio-worklet"
	RealmWorklet        RealmType = "worklet"
)

// IncludeShadowTree controls node serialization depth into shadow DOM.
type IncludeShadowTree string

const (
	ShadowTreeNone IncludeShadowTree = "none"
	ShadowTreeOpen IncludeShadowTree = "open"
	ShadowTreeAll  IncludeShadowTree = "all"
)

// Target is either a RealmTarget or a ContextTarget; exactly one of
// Realm/Context is populated on the wire, so callers build one with
// NewRealmTarget or NewContextTarget rather than touching fields
// directly.
type Target struct {
	Realm   string  `json:"realm,omitempty"`
	Context string  `json:"context,omitempty"`
	Sandbox *string `json:"sandbox,omitempty"`
}

func NewRealmTarget(realm string) Target {
	return Target{Realm: realm}
}

func NewContextTarget(context string, sandbox *string) Target {
	return Target{Context: context, Sandbox: sandbox}
}

type SerializationOptions struct {
	MaxDomDepth       *uint64            `json:"maxDomDepth,omitempty"`
	MaxObjectDepth    *uint64            `json:"maxObjectDepth,omitempty"`
	IncludeShadowTree IncludeShadowTree  `json:"includeShadowTree,omitempty"`
}

type ChannelProperties struct {
	Channel              Channel                `json:"channel"`
	SerializationOptions *SerializationOptions  `json:"serializationOptions,omitempty"`
	Ownership            ResultOwnership        `json:"ownership,omitempty"`
}

type ChannelValue struct {
	Type  string            `json:"type"` // always "channel"
	Value ChannelProperties `json:"value"`
}

// --- local values (client -> remote end) ---

// LocalValue is a loosely-typed outbound value: the concrete
// constructors (NewStringLocalValue, NewArrayLocalValue, ...) build
// the right `{"type": ..., "value": ...}` shape, matching the
// original's LocalValue enum without requiring a Go sum type.
type LocalValue struct {
	Type   string `json:"type,omitempty"`
	Value  any    `json:"value,omitempty"`
	Handle string `json:"handle,omitempty"`
}

func NewStringLocalValue(v string) LocalValue   { return LocalValue{Type: "string", Value: v} }
func NewNumberLocalValue(v float64) LocalValue  { return LocalValue{Type: "number", Value: v} }
func NewBooleanLocalValue(v bool) LocalValue    { return LocalValue{Type: "boolean", Value: v} }
func NewBigIntLocalValue(v string) LocalValue   { return LocalValue{Type: "bigint", Value: v} }
func NewNullLocalValue() LocalValue             { return LocalValue{Type: "null"} }
func NewUndefinedLocalValue() LocalValue        { return LocalValue{Type: "undefined"} }
func NewArrayLocalValue(v []LocalValue) LocalValue { return LocalValue{Type: "array", Value: v} }
func NewDateLocalValue(iso string) LocalValue   { return LocalValue{Type: "date", Value: iso} }
func NewRegExpLocalValue(pattern, flags string) LocalValue {
	return LocalValue{Type: "regexp", Value: RegExpValue{Pattern: pattern, Flags: flags}}
}
func NewRemoteReference(handle string) LocalValue { return LocalValue{Handle: handle} }

type RegExpValue struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags,omitempty"`
}

// --- remote values (remote end -> client) ---

// RemoteValue is the decoded counterpart of LocalValue, wide enough to
// hold every variant original_source's RemoteValue enum defines.
// Handle/InternalId/SharedId are populated only for reference types.
// Node is excluded from JSON and is not filled by decoding: a "node"
// value's properties arrive in Value as a generic JSON object; decode
// the value as a NodeRemoteValue to get them as NodeProperties.
type RemoteValue struct {
	Type       string             `json:"type"`
	Value      any                `json:"value,omitempty"`
	Handle     *Handle            `json:"handle,omitempty"`
	InternalID *InternalId        `json:"internalId,omitempty"`
	SharedID   *SharedId          `json:"sharedId,omitempty"`
	Node       *NodeProperties    `json:"-"`

	Extensible common.Extensible `json:"-"`
}

// NodeRemoteValue is the "node" RemoteValue variant decoded on its
// own, since its Value field is a structured NodeProperties rather
// than the loosely-typed `any` the generic RemoteValue carries.
type NodeRemoteValue struct {
	Type       string          `json:"type"` // always "node"
	SharedID   *SharedId       `json:"sharedId,omitempty"`
	Handle     *Handle         `json:"handle,omitempty"`
	InternalID *InternalId     `json:"internalId,omitempty"`
	Value      *NodeProperties `json:"value,omitempty"`
}

// NodeProperties is boxed behind NodeRemoteValue's pointer field, the
// same way the original boxes it, because it recurses through Children.
type NodeProperties struct {
	NodeType       uint64            `json:"nodeType"`
	ChildNodeCount uint64            `json:"childNodeCount"`
	Attributes     map[string]string `json:"attributes,omitempty"`
	Children       []NodeRemoteValue `json:"children,omitempty"`
	LocalName      *string           `json:"localName,omitempty"`
	NamespaceURI   *string           `json:"namespaceURI,omitempty"`
	NodeValue      *string           `json:"nodeValue,omitempty"`
	ShadowRoot     *NodeRemoteValue  `json:"shadowRoot,omitempty"`
}

// --- exceptions ---

type StackFrame struct {
	ColumnNumber uint64 `json:"columnNumber"`
	FunctionName string `json:"functionName"`
	LineNumber   uint64 `json:"lineNumber"`
	URL          string `json:"url"`
}

type StackTrace struct {
	CallFrames []StackFrame `json:"callFrames"`
}

type ExceptionDetails struct {
	ColumnNumber uint64      `json:"columnNumber"`
	Exception    RemoteValue `json:"exception"`
	LineNumber   uint64      `json:"lineNumber"`
	StackTrace   StackTrace  `json:"stackTrace"`
	Text         string      `json:"text"`
}

// Source identifies the realm (and optionally browsing context) an
// event or log entry originated from.
type Source struct {
	Realm   Realm  `json:"realm"`
	Context string `json:"context,omitempty"`
}

// --- realms ---

type RealmInfo struct {
	Realm   Realm     `json:"realm"`
	Origin  string    `json:"origin"`
	Type    RealmType `json:"type"`
	Context string    `json:"context,omitempty"`
	Sandbox string    `json:"sandbox,omitempty"`

	Extensible common.Extensible `json:"-"`
}

// --- params ---

type AddPreloadScriptParameters struct {
	FunctionDeclaration string         `json:"functionDeclaration"`
	Arguments           []ChannelValue `json:"arguments,omitempty"`
	Contexts            []string       `json:"contexts,omitempty"`
	UserContexts        []string       `json:"userContexts,omitempty"`
	Sandbox             string         `json:"sandbox,omitempty"`
}

type AddPreloadScriptResult struct {
	Script PreloadScript `json:"script"`

	Extensible common.Extensible `json:"-"`
}

type DisownParameters struct {
	Handles []Handle `json:"handles"`
	Target  Target   `json:"target"`
}

type CallFunctionParameters struct {
	FunctionDeclaration string                 `json:"functionDeclaration"`
	AwaitPromise        bool                   `json:"awaitPromise"`
	Target              Target                 `json:"target"`
	Arguments           []LocalValue           `json:"arguments,omitempty"`
	This                *LocalValue            `json:"this,omitempty"`
	ResultOwnership     ResultOwnership        `json:"resultOwnership,omitempty"`
	SerializationOptions *SerializationOptions `json:"serializationOptions,omitempty"`
	UserActivation      *bool                  `json:"userActivation,omitempty"`
}

type EvaluateParameters struct {
	Expression          string                 `json:"expression"`
	Target              Target                 `json:"target"`
	AwaitPromise        bool                   `json:"awaitPromise"`
	ResultOwnership     ResultOwnership        `json:"resultOwnership,omitempty"`
	SerializationOptions *SerializationOptions `json:"serializationOptions,omitempty"`
	UserActivation      *bool                  `json:"userActivation,omitempty"`
}

// EvaluateResult carries exactly one of Result or ExceptionDetails,
// selected by Type ("success" | "exception"), mirroring the original's
// untagged EvaluateResult enum without a Go sum type.
type EvaluateResult struct {
	Type             string            `json:"type"`
	Result           *RemoteValue      `json:"result,omitempty"`
	ExceptionDetails *ExceptionDetails `json:"exceptionDetails,omitempty"`
	Realm            Realm             `json:"realm"`

	Extensible common.Extensible `json:"-"`
}

type GetRealmsParameters struct {
	Context string    `json:"context,omitempty"`
	Type    RealmType `json:"type,omitempty"`
}

type GetRealmsResult struct {
	Realms []RealmInfo `json:"realms"`

	Extensible common.Extensible `json:"-"`
}

type RemovePreloadScriptParameters struct {
	Script PreloadScript `json:"script"`
}

// --- events ---

type MessageEvent struct {
	Channel ChannelValue `json:"channel"`
	Data    RemoteValue  `json:"data"`
	Source  Source       `json:"source"`

	Extensible common.Extensible `json:"-"`
}

type RealmCreatedEvent = RealmInfo

type RealmDestroyedEvent struct {
	Realm Realm `json:"realm"`

	Extensible common.Extensible `json:"-"`
}
