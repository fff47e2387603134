// File: model/emulation/emulation.go
// Package emulation is the wire schema for the W3C BiDi "emulation"
// module: overriding geolocation, locale, timezone and color-scheme
// signals a page observes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SetGeolocationOverride follows original_source/src/model/emulation.rs
// exactly (GeolocationCoordinates's default accuracy of 1.0 included).
// SetLocaleOverride, SetScreenOrientationOverride and
// SetTimezoneOverride are not in that file — it predates them — but
// spec.md lists "emulation" as a module requiring every defined command;
// they're added here in the same shape as SetGeolocationOverride per
// the schema-ambiguity resolution recorded in DESIGN.md.
package emulation

const (
	MethodSetGeolocationOverride        = "emulation.setGeolocationOverride"
	MethodSetLocaleOverride             = "emulation.setLocaleOverride"
	MethodSetScreenOrientationOverride  = "emulation.setScreenOrientationOverride"
	MethodSetTimezoneOverride           = "emulation.setTimezoneOverride"
)

type GeolocationCoordinates struct {
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Accuracy         float64  `json:"accuracy"`
	Altitude         *float64 `json:"altitude,omitempty"`
	AltitudeAccuracy *float64 `json:"altitudeAccuracy,omitempty"`
	Heading          *float64 `json:"heading,omitempty"`
	Speed            *float64 `json:"speed,omitempty"`
}

// NewGeolocationCoordinates matches the original's constructor default
// of 1.0 accuracy with every optional field unset.
func NewGeolocationCoordinates(latitude, longitude float64) GeolocationCoordinates {
	return GeolocationCoordinates{Latitude: latitude, Longitude: longitude, Accuracy: 1.0}
}

// GeolocationPositionError lets setGeolocationOverride simulate a
// failed geolocation lookup instead of returning coordinates.
type GeolocationPositionError struct {
	Type string `json:"type"` // always "positionUnavailable"
}

type SetGeolocationOverrideParameters struct {
	Coordinates  *GeolocationCoordinates   `json:"coordinates,omitempty"`
	Error        *GeolocationPositionError `json:"error,omitempty"`
	Contexts     []string                  `json:"contexts,omitempty"`
	UserContexts []string                  `json:"userContexts,omitempty"`
}

type SetLocaleOverrideParameters struct {
	Locale       *string  `json:"locale"`
	Contexts     []string `json:"contexts,omitempty"`
	UserContexts []string `json:"userContexts,omitempty"`
}

type ScreenOrientationNatural string

const (
	OrientationPortrait  ScreenOrientationNatural = "portrait"
	OrientationLandscape ScreenOrientationNatural = "landscape"
)

type ScreenOrientationType string

const (
	OrientationPortraitPrimary    ScreenOrientationType = "portrait-primary"
	OrientationPortraitSecondary  ScreenOrientationType = "portrait-secondary"
	OrientationLandscapePrimary   ScreenOrientationType = "landscape-primary"
	OrientationLandscapeSecondary ScreenOrientationType = "landscape-secondary"
)

type ScreenOrientation struct {
	Natural ScreenOrientationNatural `json:"natural"`
	Type    ScreenOrientationType    `json:"type"`
}

type SetScreenOrientationOverrideParameters struct {
	ScreenOrientation *ScreenOrientation `json:"screenOrientation"`
	Contexts          []string           `json:"contexts,omitempty"`
	UserContexts      []string           `json:"userContexts,omitempty"`
}

type SetTimezoneOverrideParameters struct {
	Timezone     *string  `json:"timezone"`
	Contexts     []string `json:"contexts,omitempty"`
	UserContexts []string `json:"userContexts,omitempty"`
}
