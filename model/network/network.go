// File: model/network/network.go
// Package network is the wire schema for the W3C BiDi "network"
// module: request interception and (the newer collector extension)
// bulk network-data capture.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The interception commands/events follow
// original_source/src/model/network.rs. The data-collector commands
// (AddDataCollector/RemoveDataCollector/GetData/DisownData) are not in
// that file — it predates them — but spec.md's closed error-code set
// already names "no such network collector", "no such network data",
// and "unavailable network data", so a complete implementation needs
// them; they're added here per the schema-ambiguity resolution
// recorded in DESIGN.md.
package network

import "github.com/momentics/webdriverbidi-go/model/common"

const (
	MethodAddIntercept       = "network.addIntercept"
	MethodContinueRequest    = "network.continueRequest"
	MethodContinueResponse   = "network.continueResponse"
	MethodContinueWithAuth   = "network.continueWithAuth"
	MethodFailRequest        = "network.failRequest"
	MethodProvideResponse    = "network.provideResponse"
	MethodRemoveIntercept    = "network.removeIntercept"
	MethodSetCacheBehavior   = "network.setCacheBehavior"
	MethodAddDataCollector   = "network.addDataCollector"
	MethodRemoveDataCollector = "network.removeDataCollector"
	MethodGetData            = "network.getData"
	MethodDisownData         = "network.disownData"
)

const (
	EventAuthRequired      = "network.authRequired"
	EventBeforeRequestSent = "network.beforeRequestSent"
	EventFetchError        = "network.fetchError"
	EventResponseCompleted = "network.responseCompleted"
	EventResponseStarted   = "network.responseStarted"
)

type AuthChallenge struct {
	Scheme string `json:"scheme"`
	Realm  string `json:"realm"`
}

type AuthCredentials struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewAuthCredentials builds the "password" credential variant, the
// only one the spec currently defines.
func NewAuthCredentials(username, password string) AuthCredentials {
	return AuthCredentials{Type: "password", Username: username, Password: password}
}

type AddInterceptParams struct {
	Phases      []string `json:"phases"`
	Contexts    []string `json:"contexts,omitempty"`
	URLPatterns []any    `json:"urlPatterns,omitempty"`
}

type AddInterceptResult struct {
	Intercept string `json:"intercept"`

	Extensible common.Extensible `json:"-"`
}

type RemoveInterceptParams struct {
	Intercept string `json:"intercept"`
}

type ContinueRequestParams struct {
	Request string          `json:"request"`
	Body    any             `json:"body,omitempty"`
	Cookies []any           `json:"cookies,omitempty"`
	Headers []any           `json:"headers,omitempty"`
	Method  string          `json:"method,omitempty"`
	URL     string          `json:"url,omitempty"`
}

type ContinueResponseParams struct {
	Request           string `json:"request"`
	Cookies           []any  `json:"cookies,omitempty"`
	Credentials       *AuthCredentials `json:"credentials,omitempty"`
	Headers           []any  `json:"headers,omitempty"`
	ReasonPhrase      string `json:"reasonPhrase,omitempty"`
	StatusCode        *int   `json:"statusCode,omitempty"`
}

type ContinueWithAuthParams struct {
	Request    string           `json:"request"`
	Action     string           `json:"action"` // "default" | "cancel" | "provideCredentials"
	Credentials *AuthCredentials `json:"credentials,omitempty"`
}

type FailRequestParams struct {
	Request string `json:"request"`
}

type ProvideResponseParams struct {
	Request      string `json:"request"`
	Body         any    `json:"body,omitempty"`
	Cookies      []any  `json:"cookies,omitempty"`
	Headers      []any  `json:"headers,omitempty"`
	ReasonPhrase string `json:"reasonPhrase,omitempty"`
	StatusCode   *int   `json:"statusCode,omitempty"`
}

type SetCacheBehaviorParams struct {
	CacheBehavior string   `json:"cacheBehavior"` // "default" | "bypass"
	Contexts      []string `json:"contexts,omitempty"`
}

type AddDataCollectorParams struct {
	DataTypes        []string `json:"dataTypes"`
	MaxEncodedDataSize uint64 `json:"maxEncodedDataSize"`
	Contexts         []string `json:"contexts,omitempty"`
	UserContexts     []string `json:"userContexts,omitempty"`
}

type AddDataCollectorResult struct {
	Collector string `json:"collector"`

	Extensible common.Extensible `json:"-"`
}

type RemoveDataCollectorParams struct {
	Collector string `json:"collector"`
}

type GetDataParams struct {
	DataType    string `json:"dataType"`
	Collector   string `json:"collector,omitempty"`
	Request     string `json:"request,omitempty"`
	Disown      bool   `json:"disown,omitempty"`
}

type GetDataResult struct {
	Bytes any `json:"bytes"`

	Extensible common.Extensible `json:"-"`
}

type DisownDataParams struct {
	DataType  string `json:"dataType"`
	Collector string `json:"collector"`
	Request   string `json:"request"`
}

// --- events ---

type BaseParameters struct {
	Context           string `json:"context,omitempty"`
	IsBlocked         bool   `json:"isBlocked"`
	Navigation        *string `json:"navigation"`
	RedirectCount     uint64 `json:"redirectCount"`
	Request           any    `json:"request"`
	Timestamp         uint64 `json:"timestamp"`
	Intercepts        []string `json:"intercepts,omitempty"`

	Extensible common.Extensible `json:"-"`
}

type AuthRequiredEvent struct {
	BaseParameters
	Response any `json:"response"`
}

type BeforeRequestSentEvent struct {
	BaseParameters
	Initiator any `json:"initiator"`
}

type FetchErrorEvent struct {
	BaseParameters
	ErrorText string `json:"errorText"`
}

type ResponseCompletedEvent struct {
	BaseParameters
	Response any `json:"response"`
}

type ResponseStartedEvent struct {
	BaseParameters
	Response any `json:"response"`
}
