package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/momentics/webdriverbidi-go/api"
)

func TestStartReturnsSessionAndWebSocketURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":{"sessionId":"sess-1","capabilities":{"webSocketUrl":"ws://127.0.0.1:1/session/sess-1"}}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := Start(ctx, srv.URL, NewCapabilitiesRequest(), DefaultConfig())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resp.SessionID != "sess-1" || resp.WebSocketURL != "ws://127.0.0.1:1/session/sess-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestStartFailsOnNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Start(ctx, srv.URL, NewCapabilitiesRequest(), DefaultConfig())
	if err == nil || !api.IsCode(err, api.ErrCodeTransport) {
		t.Fatalf("expected ErrCodeTransport, got %v", err)
	}
}

func TestStartFailsOnMissingWebSocketURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":{"sessionId":"sess-1","capabilities":{}}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Start(ctx, srv.URL, NewCapabilitiesRequest(), DefaultConfig())
	if err == nil || !api.IsCode(err, api.ErrCodeSerialisation) {
		t.Fatalf("expected ErrCodeSerialisation, got %v", err)
	}
}

func TestCloseDeletesSession(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := Close(ctx, srv.URL, "sess-1", DefaultConfig()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/session/sess-1" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestCapabilitiesRequestBuilders(t *testing.T) {
	req := NewCapabilitiesRequest().
		WithAlwaysMatch("browserName", "firefox").
		WithFirstMatch(map[string]any{"acceptInsecureCerts": true})

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	am, ok := decoded["alwaysMatch"].(map[string]any)
	if !ok || am["browserName"] != "firefox" {
		t.Fatalf("unexpected alwaysMatch: %v", decoded)
	}
}
