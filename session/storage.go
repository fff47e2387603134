// File: session/storage.go
// Typed wrappers for the "storage" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/storage"
)

func (s *Session) StorageGetCookies(ctx context.Context, params storage.GetCookiesParameters) (storage.GetCookiesResult, error) {
	return invoke[storage.GetCookiesResult](ctx, s, storage.MethodGetCookies, params)
}

func (s *Session) StorageSetCookie(ctx context.Context, params storage.SetCookieParameters) (storage.SetCookieResult, error) {
	return invoke[storage.SetCookieResult](ctx, s, storage.MethodSetCookie, params)
}

func (s *Session) StorageDeleteCookies(ctx context.Context, params storage.DeleteCookiesParameters) (storage.DeleteCookiesResult, error) {
	return invoke[storage.DeleteCookiesResult](ctx, s, storage.MethodDeleteCookies, params)
}
