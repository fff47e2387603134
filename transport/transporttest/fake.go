// File: transport/transporttest/fake.go
// Package transporttest provides a controllable fake api.Transport for
// unit tests of the registry, dispatcher, and session façade that
// need not dial a real WebSocket.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grounded on the teacher's fake/transport.go and
// tests/mocks/transport_mock.go fake-Transport pattern, narrowed to
// the Send/Recv/Close shape of api.Transport.
package transporttest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/momentics/webdriverbidi-go/api"
)

// Fake is an in-memory api.Transport: Send appends to Sent, and
// injected frames (via Push) are returned in order from Recv.
type Fake struct {
	mu       sync.Mutex
	cond     *sync.Cond
	inbox    [][]byte
	sent     [][]byte
	closed   bool
	sendErr  error
	closeErr error
	autoAck  bool
}

var _ api.Transport = (*Fake)(nil)

// New constructs an empty fake transport.
func New() *Fake {
	f := &Fake{}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Send records frame and returns the configured SendErr, if any. If
// EnableAutoAck was called, it also pushes a bare success response for
// the frame's id, so a Session.Close issuing session.end against a
// Fake with no scripted response doesn't block for a full command
// timeout.
func (f *Fake) Send(ctx context.Context, frame []byte) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return api.New(api.ErrCodeTransport, "transport is closed")
	}
	if f.sendErr != nil {
		f.mu.Unlock()
		return f.sendErr
	}
	cp := make([]byte, len(frame))
	copy(cp, frame)
	f.sent = append(f.sent, cp)
	autoAck := f.autoAck
	f.mu.Unlock()

	if autoAck {
		var cmd struct {
			ID uint64 `json:"id"`
		}
		if err := json.Unmarshal(frame, &cmd); err == nil {
			f.Push([]byte(fmt.Sprintf(`{"type":"success","id":%d,"result":{}}`, cmd.ID)))
		}
	}
	return nil
}

// EnableAutoAck makes every future Send automatically inject a bare
// success response keyed to that command's id, useful once a test's
// scripted exchanges are done and it just needs Session.Close's
// session.end round trip to complete without a full command timeout.
func (f *Fake) EnableAutoAck() {
	f.mu.Lock()
	f.autoAck = true
	f.mu.Unlock()
}

// Recv blocks until a frame has been pushed or the transport closes.
func (f *Fake) Recv(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for len(f.inbox) == 0 && !f.closed {
		f.cond.Wait()
	}
	if len(f.inbox) == 0 {
		return nil, api.New(api.ErrCodeTransport, "transport is closed")
	}
	frame := f.inbox[0]
	f.inbox = f.inbox[1:]
	return frame, nil
}

// Close marks the transport closed and wakes any blocked Recv.
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cond.Broadcast()
	return f.closeErr
}

// Push injects a frame to be returned by a future Recv call, in
// FIFO order, simulating an inbound server frame.
func (f *Fake) Push(frame []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(frame))
	copy(cp, frame)
	f.inbox = append(f.inbox, cp)
	f.cond.Broadcast()
}

// SetSendErr configures the error Send returns going forward.
func (f *Fake) SetSendErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendErr = err
}

// Sent returns a copy of every frame handed to Send so far.
func (f *Fake) Sent() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.sent))
	copy(out, f.sent)
	return out
}
