// File: transport/transport.go
// Package transport owns the single full-duplex WebSocket a BiDi
// session speaks over (spec §4.3). One reader (the session's
// background read loop) and many writers (command issuers) share the
// connection; Conn serializes the write side behind one mutex and
// exposes a blocking Recv for the sole reader goroutine.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grounded on the teacher's client/client.go dial/recvLoop shape and
// protocol/connection.go's single-owner-of-the-socket model, rebuilt
// atop gorilla/websocket (the teacher's own tests/go.mod already
// depends on it "for integration tests"; grafana-k6 and
// vango-go-vango in the same pack use it as their production
// transport) instead of the teacher's hand-rolled RFC6455 framing,
// which this client has no reason to reimplement.
package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/momentics/webdriverbidi-go/api"
)

// Config controls the dial and per-call deadlines.
type Config struct {
	// DialTimeout bounds the WebSocket handshake.
	DialTimeout time.Duration
	// WriteTimeout bounds a single Send call, 0 disables the deadline.
	WriteTimeout time.Duration
}

// DefaultConfig returns sane defaults for dialing a local or
// low-latency WebDriver endpoint.
func DefaultConfig() Config {
	return Config{
		DialTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Conn is the concrete api.Transport over a gorilla/websocket socket.
type Conn struct {
	cfg Config
	ws  *websocket.Conn

	writeMu sync.Mutex
	closed  chan struct{}
	once    sync.Once
}

var _ api.Transport = (*Conn)(nil)

// Dial opens a WebSocket connection to wsURL. Failure to complete the
// handshake is reported as api.ErrCodeTransport (spec: "transport
// connect fails with *transport-connect*").
func Dial(ctx context.Context, wsURL string, cfg Config) (*Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: cfg.DialTimeout,
	}
	ws, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, api.Wrap(api.ErrCodeTransport, "websocket handshake failed", err).
			WithContext("url", wsURL)
	}
	return &Conn{cfg: cfg, ws: ws, closed: make(chan struct{})}, nil
}

// Send serializes at the write boundary: the frame that reaches the
// socket is atomic even with many concurrent callers (spec §3, §5).
func (c *Conn) Send(ctx context.Context, frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	select {
	case <-c.closed:
		return api.New(api.ErrCodeTransport, "transport is closed")
	default:
	}

	deadline := time.Time{}
	if c.cfg.WriteTimeout > 0 {
		deadline = time.Now().Add(c.cfg.WriteTimeout)
	}
	if dl, ok := ctx.Deadline(); ok && (deadline.IsZero() || dl.Before(deadline)) {
		deadline = dl
	}
	if !deadline.IsZero() {
		if err := c.ws.SetWriteDeadline(deadline); err != nil {
			return api.Wrap(api.ErrCodeTransport, "set write deadline", err)
		}
	}

	if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
		return api.Wrap(api.ErrCodeTransport, "websocket write failed", err)
	}
	return nil
}

// Recv blocks until the next text frame arrives. Non-text frames
// (ping/pong/close are handled internally by gorilla; binary frames
// are explicitly skipped) are never returned to the caller, per spec
// §4.3 ("Non-text frames are ignored").
func (c *Conn) Recv(ctx context.Context) ([]byte, error) {
	for {
		select {
		case <-c.closed:
			return nil, api.New(api.ErrCodeTransport, "transport is closed")
		default:
		}
		if dl, ok := ctx.Deadline(); ok {
			_ = c.ws.SetReadDeadline(dl)
		} else {
			_ = c.ws.SetReadDeadline(time.Time{})
		}

		kind, data, err := c.ws.ReadMessage()
		if err != nil {
			if c.isClosed() {
				return nil, api.New(api.ErrCodeTransport, "transport is closed")
			}
			return nil, api.Wrap(api.ErrCodeTransport, "websocket read failed", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		return data, nil
	}
}

func (c *Conn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Close idempotently tears down the socket.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.closed)
		err = c.ws.Close()
	})
	if err != nil {
		return fmt.Errorf("transport: close: %w", err)
	}
	return nil
}
