// File: session/emulation.go
// Typed wrappers for the "emulation" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/emulation"
)

func (s *Session) EmulationSetGeolocationOverride(ctx context.Context, params emulation.SetGeolocationOverrideParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, emulation.MethodSetGeolocationOverride, params)
}

func (s *Session) EmulationSetLocaleOverride(ctx context.Context, params emulation.SetLocaleOverrideParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, emulation.MethodSetLocaleOverride, params)
}

func (s *Session) EmulationSetScreenOrientationOverride(ctx context.Context, params emulation.SetScreenOrientationOverrideParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, emulation.MethodSetScreenOrientationOverride, params)
}

func (s *Session) EmulationSetTimezoneOverride(ctx context.Context, params emulation.SetTimezoneOverrideParameters) (sessionEmptyResult, error) {
	return invoke[sessionEmptyResult](ctx, s, emulation.MethodSetTimezoneOverride, params)
}
