// File: api/wirecodes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The closed set of on-wire error code strings (spec §6), grounded on
// original_source's src/model/error.rs ErrorCode enum. Kept as plain
// string constants rather than a Go enum type because the wire value
// is consumed verbatim into api.Error.WireCode, never re-interpreted.

package api

const (
	WireInvalidArgument             = "invalid argument"
	WireInvalidSelector              = "invalid selector"
	WireInvalidSessionID             = "invalid session id"
	WireInvalidWebExtension          = "invalid web extension"
	WireMoveTargetOutOfBounds        = "move target out of bounds"
	WireNoSuchAlert                  = "no such alert"
	WireNoSuchElement                = "no such element"
	WireNoSuchFrame                  = "no such frame"
	WireNoSuchHandle                 = "no such handle"
	WireNoSuchHistoryEntry           = "no such history entry"
	WireNoSuchIntercept              = "no such intercept"
	WireNoSuchNetworkCollector       = "no such network collector"
	WireNoSuchNetworkData            = "no such network data"
	WireNoSuchNode                   = "no such node"
	WireNoSuchRequest                = "no such request"
	WireNoSuchScript                 = "no such script"
	WireNoSuchStoragePartition       = "no such storage partition"
	WireNoSuchUserContext            = "no such user context"
	WireNoSuchWebExtension           = "no such web extension"
	WireSessionNotCreated            = "session not created"
	WireUnableToCaptureScreen        = "unable to capture screen"
	WireUnableToCloseBrowser         = "unable to close browser"
	WireUnableToSetCookie            = "unable to set cookie"
	WireUnableToSetFileInput         = "unable to set file input"
	WireUnavailableNetworkData       = "unavailable network data"
	WireUnderspecifiedStoragePartition = "underspecified storage partition"
	WireUnknownCommand               = "unknown command"
	WireUnknownError                 = "unknown error"
	WireUnsupportedOperation         = "unsupported operation"
)
