// File: api/errors.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error taxonomy for the BiDi core boundary (spec §7). Every error a
// caller can observe from the session façade is one of these six
// kinds; the core never retries, it always returns the error to the
// caller that issued the command.

package api

import "fmt"

// ErrorCode classifies failures at the core boundary.
type ErrorCode int

const (
	// ErrCodeTransport covers socket connect, send, receive, or
	// abnormal close.
	ErrCodeTransport ErrorCode = iota
	// ErrCodeTimeout means no response arrived within the configured
	// command timeout.
	ErrCodeTimeout
	// ErrCodeProtocol means the server returned an error envelope;
	// Code and Message mirror the wire error verbatim.
	ErrCodeProtocol
	// ErrCodeSerialisation means an outbound value could not be
	// encoded, or an inbound envelope/result could not be decoded.
	ErrCodeSerialisation
	// ErrCodeMissingID means an outbound envelope lacked a numeric id;
	// defensive, should not occur given allocate-id's monotonic
	// counter.
	ErrCodeMissingID
	// ErrCodeSessionClosed means the operation was attempted after
	// teardown, or was cancelled by teardown while outstanding.
	ErrCodeSessionClosed
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTransport:
		return "transport"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeProtocol:
		return "protocol"
	case ErrCodeSerialisation:
		return "serialisation"
	case ErrCodeMissingID:
		return "missing-id"
	case ErrCodeSessionClosed:
		return "session-closed"
	default:
		return "unknown"
	}
}

// Error is the structured error returned by every session operation.
type Error struct {
	Code ErrorCode
	// Msg is a human-readable summary.
	Msg string
	// WireCode carries the on-wire error string verbatim for
	// ErrCodeProtocol (e.g. "no such frame"); empty otherwise.
	WireCode string
	// Stacktrace carries the server-supplied stacktrace, if any.
	Stacktrace string
	// Context holds diagnostic key/value pairs (command id, method).
	Context map[string]any
	// Cause is the underlying error, if any (e.g. a net.Error).
	Cause error
}

func (e *Error) Error() string {
	if e.WireCode != "" {
		return fmt.Sprintf("webdriverbidi: %s: %s: %s", e.Code, e.WireCode, e.Msg)
	}
	if len(e.Context) != 0 {
		return fmt.Sprintf("webdriverbidi: %s: %s (context: %+v)", e.Code, e.Msg, e.Context)
	}
	return fmt.Sprintf("webdriverbidi: %s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs a structured Error of the given code.
func New(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Wrap constructs a structured Error wrapping cause.
func Wrap(code ErrorCode, msg string, cause error) *Error {
	return &Error{Code: code, Msg: msg, Cause: cause}
}

// WithContext attaches a diagnostic field and returns the receiver.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Protocol constructs the ErrCodeProtocol variant carrying the
// server's on-wire error code, message, and stacktrace verbatim.
func Protocol(wireCode, message, stacktrace string) *Error {
	return &Error{
		Code:       ErrCodeProtocol,
		Msg:        message,
		WireCode:   wireCode,
		Stacktrace: stacktrace,
	}
}

// IsCode reports whether err is an *Error of the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Code == code
}
