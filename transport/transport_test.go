// File: transport/transport_test.go
// Grounded on vango-go-vango's httptest.NewServer + gorilla upgrader
// pattern for exercising a real WebSocket round trip in-process.
package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newEchoServer(t *testing.T) (wsURL string, cleanup func()) {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		go func() {
			defer conn.Close()
			for {
				kind, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				if err := conn.WriteMessage(kind, data); err != nil {
					return
				}
			}
		}()
	}))
	return "ws" + strings.TrimPrefix(srv.URL, "http"), srv.Close
}

func TestDialSendRecvRoundTrip(t *testing.T) {
	wsURL, cleanup := newEchoServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, err := Dial(ctx, wsURL, DefaultConfig())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := conn.Send(ctx, []byte(`{"id":1}`)); err != nil {
		t.Fatalf("Send: %v", err)
	}

	got, err := conn.Recv(ctx)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if string(got) != `{"id":1}` {
		t.Fatalf("unexpected echo: %s", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	wsURL, cleanup := newEchoServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, err := Dial(ctx, wsURL, DefaultConfig())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}

func TestRecvAfterCloseReturnsError(t *testing.T) {
	wsURL, cleanup := newEchoServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, err := Dial(ctx, wsURL, DefaultConfig())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	_ = conn.Close()

	if _, err := conn.Recv(ctx); err == nil {
		t.Fatal("expected an error after close")
	}
}
