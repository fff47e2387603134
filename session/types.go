// File: session/types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package session

import "github.com/momentics/webdriverbidi-go/model/sessioncmd"

// sessionEmptyResult is the shared decode target for every command
// across every module whose wire result is {} (or an Extensible-only
// bag): browsingContext.close, browsingContext.setViewport, and
// their siblings in the other typed-method files.
type sessionEmptyResult = sessioncmd.EmptyResult
