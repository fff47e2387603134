// File: model/log/log.go
// Package log is the wire schema for the W3C BiDi "log" module: the
// single entryAdded event carrying console/JS/generic log entries.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Field shapes follow original_source/src/model/log.rs; Entry's three
// variants are flattened onto one struct (Type discriminates) the same
// way this package's sibling model packages represent untagged Rust
// enums without a Go sum type.
package log

import (
	"github.com/momentics/webdriverbidi-go/model/common"
	"github.com/momentics/webdriverbidi-go/model/script"
)

const EventEntryAdded = "log.entryAdded"

// Level is the log entry severity, lowercased on the wire.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is the decoded log.entryAdded payload. Method and Args are
// populated only when Type is "console"; every other field is common
// to all three of the original's Entry variants (generic, console,
// javascript).
type Entry struct {
	Type       string            `json:"type"` // "generic" | "console" | "javascript"
	Level      Level             `json:"level"`
	Source     script.Source     `json:"source"`
	Text       *string           `json:"text"`
	Timestamp  uint64            `json:"timestamp"`
	StackTrace *script.StackTrace `json:"stackTrace,omitempty"`
	Method     string            `json:"method,omitempty"`
	Args       []script.RemoteValue `json:"args,omitempty"`

	Extensible common.Extensible `json:"-"`
}

type EntryAddedEvent = Entry
