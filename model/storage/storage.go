// File: model/storage/storage.go
// Package storage is the wire schema for the W3C BiDi "storage"
// module: cookie get/set/delete against a partition.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Field shapes follow original_source/src/model/storage.rs.
package storage

import "github.com/momentics/webdriverbidi-go/model/common"

const (
	MethodDeleteCookies = "storage.deleteCookies"
	MethodGetCookies    = "storage.getCookies"
	MethodSetCookie     = "storage.setCookie"
)

// SameSite is the cookie same-site policy enum.
type SameSite string

const (
	SameSiteStrict SameSite = "strict"
	SameSiteLax    SameSite = "lax"
	SameSiteNone   SameSite = "none"
)

// BytesValue is either a plain string or a base64 byte string, chosen
// by Type; callers build one with NewStringBytesValue or
// NewBase64BytesValue rather than setting fields directly.
type BytesValue struct {
	Type  string `json:"type"` // "string" | "base64"
	Value string `json:"value"`
}

func NewStringBytesValue(v string) BytesValue { return BytesValue{Type: "string", Value: v} }
func NewBase64BytesValue(v string) BytesValue { return BytesValue{Type: "base64", Value: v} }

type PartitionKey struct {
	UserContext  string `json:"userContext,omitempty"`
	SourceOrigin string `json:"sourceOrigin,omitempty"`

	Extensible common.Extensible `json:"-"`
}

// PartitionDescriptor selects a context-scoped or storage-key-scoped
// partition; Type discriminates which fields apply, matching the
// original's untagged PartitionDescriptor enum.
type PartitionDescriptor struct {
	Type         string `json:"type"` // "context" | "storageKey"
	Context      string `json:"context,omitempty"`
	UserContext  string `json:"userContext,omitempty"`
	SourceOrigin string `json:"sourceOrigin,omitempty"`
}

func NewContextPartitionDescriptor(context string) PartitionDescriptor {
	return PartitionDescriptor{Type: "context", Context: context}
}

func NewStorageKeyPartitionDescriptor(userContext, sourceOrigin string) PartitionDescriptor {
	return PartitionDescriptor{Type: "storageKey", UserContext: userContext, SourceOrigin: sourceOrigin}
}

type CookieFilter struct {
	Name     string      `json:"name,omitempty"`
	Value    *BytesValue `json:"value,omitempty"`
	Domain   string      `json:"domain,omitempty"`
	Path     string      `json:"path,omitempty"`
	Size     *uint64     `json:"size,omitempty"`
	HTTPOnly *bool       `json:"httpOnly,omitempty"`
	Secure   *bool       `json:"secure,omitempty"`
	SameSite SameSite    `json:"sameSite,omitempty"`
	Expiry   *uint64     `json:"expiry,omitempty"`
}

type Cookie struct {
	Name     string   `json:"name"`
	Value    BytesValue `json:"value"`
	Domain   string   `json:"domain"`
	Path     string   `json:"path"`
	Size     uint64   `json:"size"`
	HTTPOnly bool     `json:"httpOnly"`
	Secure   bool     `json:"secure"`
	SameSite SameSite `json:"sameSite"`
	Expiry   *uint64  `json:"expiry,omitempty"`

	Extensible common.Extensible `json:"-"`
}

type PartialCookie struct {
	Name     string      `json:"name"`
	Value    BytesValue  `json:"value"`
	Domain   string      `json:"domain"`
	Path     string      `json:"path,omitempty"`
	HTTPOnly *bool       `json:"httpOnly,omitempty"`
	Secure   *bool       `json:"secure,omitempty"`
	SameSite SameSite    `json:"sameSite,omitempty"`
	Expiry   *uint64     `json:"expiry,omitempty"`
}

type GetCookiesParameters struct {
	Filter    *CookieFilter        `json:"filter,omitempty"`
	Partition *PartitionDescriptor `json:"partition,omitempty"`
}

type GetCookiesResult struct {
	Cookies      []Cookie     `json:"cookies"`
	PartitionKey PartitionKey `json:"partitionKey"`

	Extensible common.Extensible `json:"-"`
}

type SetCookieParameters struct {
	Cookie    PartialCookie        `json:"cookie"`
	Partition *PartitionDescriptor `json:"partition,omitempty"`
}

type SetCookieResult struct {
	PartitionKey PartitionKey `json:"partitionKey"`

	Extensible common.Extensible `json:"-"`
}

type DeleteCookiesParameters struct {
	Filter    *CookieFilter        `json:"filter,omitempty"`
	Partition *PartitionDescriptor `json:"partition,omitempty"`
}

type DeleteCookiesResult struct {
	PartitionKey PartitionKey `json:"partitionKey"`

	Extensible common.Extensible `json:"-"`
}
