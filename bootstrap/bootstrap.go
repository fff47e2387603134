// File: bootstrap/bootstrap.go
// Package bootstrap implements the HTTP bootstrap (spec §4.2): the
// POST/DELETE pair against the remote end's /session resource that
// hands back the WebSocket URL a BiDi session then speaks over.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grounded on original_source/src/webdriver/session.rs start_session /
// close_session, translated from reqwest to net/http. No HTTP client
// library (resty, sling, ...) appears anywhere in the retrieved
// example pack, so net/http is the one stdlib-only component in this
// module — see DESIGN.md.
package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/momentics/webdriverbidi-go/api"
)

// CapabilitiesRequest mirrors the original's
// webdriver::capabilities::CapabilitiesRequest builder: a WebDriver
// "always match" / "first match" capability pair. Spec.md treats
// capabilities opaquely ("params is command-specific"); this shape is
// the one the original's start_session sends.
type CapabilitiesRequest struct {
	AlwaysMatch map[string]any   `json:"alwaysMatch,omitempty"`
	FirstMatch  []map[string]any `json:"firstMatch,omitempty"`
}

// NewCapabilitiesRequest returns an empty request ready for building.
func NewCapabilitiesRequest() CapabilitiesRequest {
	return CapabilitiesRequest{AlwaysMatch: map[string]any{}}
}

// WithAlwaysMatch sets a single always-match capability.
func (c CapabilitiesRequest) WithAlwaysMatch(key string, value any) CapabilitiesRequest {
	if c.AlwaysMatch == nil {
		c.AlwaysMatch = map[string]any{}
	}
	c.AlwaysMatch[key] = value
	return c
}

// WithFirstMatch appends one first-match capability set.
func (c CapabilitiesRequest) WithFirstMatch(set map[string]any) CapabilitiesRequest {
	c.FirstMatch = append(c.FirstMatch, set)
	return c
}

// SessionResponse is what start() hands back (spec §4.2).
type SessionResponse struct {
	SessionID    string
	Capabilities json.RawMessage
	WebSocketURL string
}

// Config controls the HTTP bootstrap's own client. Timeout is stored
// but not applied by Start or Close: each request is bounded only by
// the caller's context and by HTTPClient's own settings.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// DefaultConfig returns a bootstrap config with a 30s timeout.
func DefaultConfig() Config {
	return Config{HTTPClient: http.DefaultClient, Timeout: 30 * time.Second}
}

type startEnvelope struct {
	Capabilities CapabilitiesRequest `json:"capabilities"`
}

type startResponseBody struct {
	Value struct {
		SessionID    string          `json:"sessionId"`
		Capabilities json.RawMessage `json:"capabilities"`
	} `json:"value"`
}

type capabilitiesWebSocketURL struct {
	WebSocketURL string `json:"webSocketUrl"`
}

// Start POSTs {capabilities} to baseURL/session and extracts the
// session id and negotiated WebSocket URL. Missing either field fails
// with a *bootstrap-schema* error (spec §4.2), reported here as
// ErrCodeSerialisation.
func Start(ctx context.Context, baseURL string, capabilities CapabilitiesRequest, cfg Config) (*SessionResponse, error) {
	body, err := json.Marshal(startEnvelope{Capabilities: capabilities})
	if err != nil {
		return nil, api.Wrap(api.ErrCodeSerialisation, "encode capabilities", err)
	}

	url := baseURL + "/session"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, api.Wrap(api.ErrCodeTransport, "build bootstrap request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, api.Wrap(api.ErrCodeTransport, "bootstrap POST failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, api.Wrap(api.ErrCodeTransport, "read bootstrap response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, api.New(api.ErrCodeTransport, fmt.Sprintf("bootstrap POST /session: status %d: %s", resp.StatusCode, string(raw)))
	}

	var out startResponseBody
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, api.Wrap(api.ErrCodeSerialisation, "decode bootstrap response", err)
	}
	if out.Value.SessionID == "" {
		return nil, api.New(api.ErrCodeSerialisation, "bootstrap response missing value.sessionId")
	}

	var wsHolder capabilitiesWebSocketURL
	if err := json.Unmarshal(out.Value.Capabilities, &wsHolder); err != nil || wsHolder.WebSocketURL == "" {
		return nil, api.New(api.ErrCodeSerialisation, "bootstrap response missing value.capabilities.webSocketUrl")
	}

	return &SessionResponse{
		SessionID:    out.Value.SessionID,
		Capabilities: out.Value.Capabilities,
		WebSocketURL: wsHolder.WebSocketURL,
	}, nil
}

// Close DELETEs baseURL/session/{sessionID}. A network failure or a
// non-2xx status is surfaced verbatim (spec §4.2).
func Close(ctx context.Context, baseURL, sessionID string, cfg Config) error {
	url := fmt.Sprintf("%s/session/%s", baseURL, sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return api.Wrap(api.ErrCodeTransport, "build bootstrap close request", err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return api.Wrap(api.ErrCodeTransport, "bootstrap DELETE failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return api.New(api.ErrCodeTransport, fmt.Sprintf("bootstrap DELETE /session/%s: status %d: %s", sessionID, resp.StatusCode, string(raw)))
	}
	return nil
}
