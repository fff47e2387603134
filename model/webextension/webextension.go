// File: model/webextension/webextension.go
// Package webextension is the wire schema for the W3C BiDi
// "webExtension" module: installing and removing extensions on the
// remote end.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Field shapes follow original_source/src/models/local/web_extension.rs
// and src/commands/web_extension.rs.
package webextension

import "github.com/momentics/webdriverbidi-go/model/common"

const (
	MethodInstall   = "webExtension.install"
	MethodUninstall = "webExtension.uninstall"
)

type Extension = string

// ExtensionData selects how the extension is supplied: either an
// archive path already present on the remote end, or a base64-encoded
// payload, per the W3C spec's ExtensionData union. Construct one with
// NewExtensionArchivePath or NewExtensionBase64Encoded.
type ExtensionData struct {
	Type  string `json:"type"` // "path" | "archivePath" | "base64"
	Path  string `json:"path,omitempty"`
	Value string `json:"value,omitempty"`
}

func NewExtensionArchivePath(path string) ExtensionData {
	return ExtensionData{Type: "archivePath", Path: path}
}

func NewExtensionBase64Encoded(value string) ExtensionData {
	return ExtensionData{Type: "base64", Value: value}
}

type InstallParameters struct {
	ExtensionData ExtensionData `json:"extensionData"`
}

type InstallResult struct {
	Extension Extension `json:"extension"`

	Extensible common.Extensible `json:"-"`
}

type UninstallParameters struct {
	Extension Extension `json:"extension"`
}
