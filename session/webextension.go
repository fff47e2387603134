// File: session/webextension.go
// Typed wrappers for the "webExtension" module's commands (spec §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import (
	"context"

	"github.com/momentics/webdriverbidi-go/model/webextension"
)

func (s *Session) WebExtensionInstall(ctx context.Context, data webextension.ExtensionData) (webextension.InstallResult, error) {
	params := webextension.InstallParameters{ExtensionData: data}
	return invoke[webextension.InstallResult](ctx, s, webextension.MethodInstall, params)
}

func (s *Session) WebExtensionUninstall(ctx context.Context, extension string) (sessionEmptyResult, error) {
	params := webextension.UninstallParameters{Extension: extension}
	return invoke[sessionEmptyResult](ctx, s, webextension.MethodUninstall, params)
}
