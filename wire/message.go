// File: wire/message.go
// Package wire implements the BiDi wire envelope: the three message
// shapes that travel over the single WebSocket (command, response,
// event) and the classifier that tells them apart on receipt.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/momentics/webdriverbidi-go/model/common"
)

// Command is the client-to-server envelope: {id, method, params}.
type Command struct {
	ID     uint64          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// EncodeCommand serializes a {id, method, params} command envelope,
// rejecting ids outside the safe-integer range.
func EncodeCommand(id uint64, method string, params any) ([]byte, error) {
	if err := common.ValidateJsUint(id); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("wire: encode params for %s: %w", method, err)
	}
	cmd := Command{ID: id, Method: method, Params: raw}
	out, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("wire: encode command %s: %w", method, err)
	}
	return out, nil
}

// Kind identifies which of the three wire shapes an inbound frame is.
type Kind int

const (
	// KindOrphan is a frame matching none of the other shapes:
	// malformed JSON, an id outside the safe-integer range, an id with
	// neither result nor error, or an id-less frame that is neither an
	// error nor an event.
	KindOrphan Kind = iota
	KindSuccess
	KindError
	KindEvent
)

// Envelope is the loosely-typed decode of any inbound frame; Classify
// fills in exactly the fields relevant to its Kind.
type Envelope struct {
	Kind Kind

	// success / error
	ID     uint64
	HasID  bool
	Result json.RawMessage // success only

	// error
	ErrorCode   string
	Message     string
	Stacktrace  string
	Extensible  common.Extensible

	// event
	Method string
	Params json.RawMessage
}

// wireFrame is the raw shape every inbound frame is first decoded
// into; which of its fields are populated decides the Kind.
type wireFrame struct {
	Type       string          `json:"type"`
	ID         *uint64         `json:"id"`
	Result     json.RawMessage `json:"result"`
	Error      *string         `json:"error"`
	Message    *string         `json:"message"`
	Stacktrace *string         `json:"stacktrace"`
	Method     *string         `json:"method"`
	Params     json.RawMessage `json:"params"`
}

// Classify parses a single inbound text frame and determines its kind
// per spec §4.5. Malformed JSON or an envelope matching none of the
// three shapes classifies as KindOrphan; it never returns an error —
// the caller logs and drops orphans instead of tearing down the read
// loop (spec §7: malformed frames never terminate the session).
func Classify(raw []byte) Envelope {
	var f wireFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Envelope{Kind: KindOrphan}
	}

	if f.ID != nil {
		if *f.ID >= common.MaxSafeInteger {
			return Envelope{Kind: KindOrphan}
		}
		if f.Result != nil {
			return Envelope{Kind: KindSuccess, ID: *f.ID, HasID: true, Result: f.Result}
		}
		if f.Error != nil {
			env := Envelope{Kind: KindError, ID: *f.ID, HasID: true, ErrorCode: *f.Error}
			if f.Message != nil {
				env.Message = *f.Message
			}
			if f.Stacktrace != nil {
				env.Stacktrace = *f.Stacktrace
			}
			return env
		}
		return Envelope{Kind: KindOrphan}
	}

	// No id: either an id-less error response (server could not
	// attribute the failure) or an event. An error without an id is
	// returned as KindError with HasID false; the session's read loop
	// logs it and never routes it to a waiter per spec §3.
	if f.Type == "error" && f.Error != nil {
		env := Envelope{Kind: KindError, HasID: false, ErrorCode: *f.Error}
		if f.Message != nil {
			env.Message = *f.Message
		}
		if f.Stacktrace != nil {
			env.Stacktrace = *f.Stacktrace
		}
		return env
	}

	if f.Type == "event" && f.Method != nil {
		return Envelope{Kind: KindEvent, Method: *f.Method, Params: f.Params}
	}

	return Envelope{Kind: KindOrphan}
}
