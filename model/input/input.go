// File: model/input/input.go
// Package input is the wire schema for the W3C BiDi "input" module:
// synthesized key, pointer and wheel action sequences.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// original_source has no src/model/input.rs (the Rust client this
// repository descends from never implemented this module), so the
// action-source shapes here follow the W3C WebDriver BiDi
// specification's own action model directly rather than a pack file;
// the surrounding struct/constant conventions (Method constants,
// New* builder functions) match the sibling model packages grounded
// in original_source. The module has no result payloads, so no type
// here carries an Extensible bag.
package input

const (
	MethodPerformActions = "input.performActions"
	MethodReleaseActions = "input.releaseActions"
	MethodSetFiles       = "input.setFiles"
)

// SourceActions is one input source's action sequence. Type names the
// source kind; PointerParameters applies only to "pointer" sources.
type SourceActions struct {
	Type    string        `json:"type"` // "none" | "key" | "pointer" | "wheel"
	ID      string        `json:"id"`
	Actions []Action      `json:"actions"`

	PointerParameters *PointerParameters `json:"parameters,omitempty"`
}

func NewNoneActions(id string, actions []Action) SourceActions {
	return SourceActions{Type: "none", ID: id, Actions: actions}
}

func NewKeyActions(id string, actions []Action) SourceActions {
	return SourceActions{Type: "key", ID: id, Actions: actions}
}

func NewPointerActions(id string, params *PointerParameters, actions []Action) SourceActions {
	return SourceActions{Type: "pointer", ID: id, PointerParameters: params, Actions: actions}
}

func NewWheelActions(id string, actions []Action) SourceActions {
	return SourceActions{Type: "wheel", ID: id, Actions: actions}
}

// PointerType distinguishes mouse, pen, and touch pointer sources.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerPen   PointerType = "pen"
	PointerTouch PointerType = "touch"
)

type PointerParameters struct {
	PointerType PointerType `json:"pointerType,omitempty"`
}

// Action is a single step within a source's sequence. Fields beyond
// Type are populated according to which action it encodes;
// construct one with the New*Action helpers rather than by hand.
type Action struct {
	Type string `json:"type"` // "pause" | "keyDown" | "keyUp" | "pointerDown" | "pointerUp" | "pointerMove" | "pointerCancel" | "scroll"

	Duration *uint64 `json:"duration,omitempty"`

	Value string `json:"value,omitempty"` // key actions

	Button *uint64 `json:"button,omitempty"` // pointer down/up

	X *int64 `json:"x,omitempty"` // pointer/wheel move target
	Y *int64 `json:"y,omitempty"`

	Origin any `json:"origin,omitempty"`

	Width                 *uint64  `json:"width,omitempty"`
	Height                *uint64  `json:"height,omitempty"`
	Pressure              *float64 `json:"pressure,omitempty"`
	TangentialPressure    *float64 `json:"tangentialPressure,omitempty"`
	TiltX                 *int64   `json:"tiltX,omitempty"`
	TiltY                 *int64   `json:"tiltY,omitempty"`
	Twist                 *uint64  `json:"twist,omitempty"`
	AltitudeAngle         *float64 `json:"altitudeAngle,omitempty"`
	AzimuthAngle          *float64 `json:"azimuthAngle,omitempty"`

	DeltaX *int64 `json:"deltaX,omitempty"` // wheel scroll
	DeltaY *int64 `json:"deltaY,omitempty"`
}

func NewPauseAction(duration uint64) Action { return Action{Type: "pause", Duration: &duration} }
func NewKeyDownAction(value string) Action  { return Action{Type: "keyDown", Value: value} }
func NewKeyUpAction(value string) Action    { return Action{Type: "keyUp", Value: value} }

func NewPointerDownAction(button uint64) Action { return Action{Type: "pointerDown", Button: &button} }
func NewPointerUpAction(button uint64) Action   { return Action{Type: "pointerUp", Button: &button} }

func NewPointerMoveAction(x, y int64, origin any) Action {
	return Action{Type: "pointerMove", X: &x, Y: &y, Origin: origin}
}

func NewScrollAction(x, y, deltaX, deltaY int64, origin any) Action {
	return Action{Type: "scroll", X: &x, Y: &y, DeltaX: &deltaX, DeltaY: &deltaY, Origin: origin}
}

type PerformActionsParameters struct {
	Context string          `json:"context"`
	Actions []SourceActions `json:"actions"`
}

type ReleaseActionsParameters struct {
	Context string `json:"context"`
}

type SetFilesParameters struct {
	Context string   `json:"context"`
	Element any      `json:"element"`
	Files   []string `json:"files"`
}
