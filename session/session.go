// File: session/session.go
// Package session is the façade: it owns the single WebSocket, the
// command registry, the event dispatcher, and the background read
// loop, and exposes a typed method per BiDi command (spec §4, §6).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction and lifecycle follow the teacher's facade.HioloadWS /
// facade.Config / facade.New shape (one struct owning every
// subsystem, a Config/DefaultConfig pair, a single New constructor);
// the command/event semantics follow original_source/src/session.rs:
// one registry, one dispatcher, one reader goroutine, teardown drains
// outstanding commands with a SessionClosed error.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/momentics/webdriverbidi-go/api"
	"github.com/momentics/webdriverbidi-go/bootstrap"
	"github.com/momentics/webdriverbidi-go/internal/dispatcher"
	"github.com/momentics/webdriverbidi-go/internal/registry"
	"github.com/momentics/webdriverbidi-go/model/common"
	"github.com/momentics/webdriverbidi-go/transport"
	"github.com/momentics/webdriverbidi-go/wire"
)

// Config controls a Session's timeouts and optional observability
// hooks. Mirrors the teacher's Config/DefaultConfig pattern.
type Config struct {
	// CommandTimeout bounds how long a command waits for a response
	// before failing with ErrCodeTimeout. Resolves the "what is the
	// default command timeout" open question: 60s, matching
	// original_source's command_sender.rs constant.
	CommandTimeout time.Duration
	// DialTimeout/WriteTimeout configure the underlying transport.
	DialTimeout  time.Duration
	WriteTimeout time.Duration
	// Bootstrap configures the HTTP session.new/session.end calls.
	Bootstrap bootstrap.Config
	// Tracer, if non-nil, observes every command round trip.
	Tracer api.Tracer
}

// DefaultConfig returns a Config with spec-default timeouts.
func DefaultConfig() Config {
	return Config{
		CommandTimeout: 60 * time.Second,
		DialTimeout:    30 * time.Second,
		WriteTimeout:   10 * time.Second,
		Bootstrap:      bootstrap.DefaultConfig(),
	}
}

// Session is one live BiDi connection: a single WebSocket plus the
// registry/dispatcher pair multiplexed over it. All exported methods
// are safe for concurrent use.
type Session struct {
	cfg        Config
	transport  api.Transport
	registry   *registry.Registry
	dispatcher *dispatcher.Dispatcher

	// baseURL is the HTTP endpoint session.new was posted to; empty
	// for sessions built with Attach, which never performed the HTTP
	// bootstrap and so have no session.end/DELETE counterpart to issue.
	baseURL   string
	sessionID string

	closeOnce sync.Once
	closed    chan struct{}
	readDone  chan struct{}

	debug *DebugProbes
}

// Start performs the HTTP bootstrap (spec §4.2), dials the negotiated
// WebSocket URL, and launches the background read loop. The returned
// Session is ready to issue commands immediately.
func Start(ctx context.Context, baseURL string, capabilities bootstrap.CapabilitiesRequest, cfg Config) (*Session, error) {
	if cfg.CommandTimeout <= 0 {
		cfg = DefaultConfig()
	}

	resp, err := bootstrap.Start(ctx, baseURL, capabilities, cfg.Bootstrap)
	if err != nil {
		return nil, err
	}

	tcfg := transport.Config{DialTimeout: cfg.DialTimeout, WriteTimeout: cfg.WriteTimeout}
	conn, err := transport.Dial(ctx, resp.WebSocketURL, tcfg)
	if err != nil {
		_ = bootstrap.Close(ctx, baseURL, resp.SessionID, cfg.Bootstrap)
		return nil, err
	}

	return newSession(conn, baseURL, resp.SessionID, cfg), nil
}

// Attach wraps an already-connected transport as a Session without
// performing the HTTP bootstrap — used by tests and by callers that
// manage the WebSocket URL negotiation themselves. Close on such a
// Session skips the HTTP DELETE (there was no session.new POST to
// undo) but still issues session.end over the wire.
func Attach(t api.Transport, sessionID string, cfg Config) *Session {
	if cfg.CommandTimeout <= 0 {
		cfg = DefaultConfig()
	}
	return newSession(t, "", sessionID, cfg)
}

func newSession(t api.Transport, baseURL, sessionID string, cfg Config) *Session {
	s := &Session{
		cfg:        cfg,
		transport:  t,
		registry:   registry.New(),
		dispatcher: dispatcher.New(),
		baseURL:    baseURL,
		sessionID:  sessionID,
		closed:     make(chan struct{}),
		readDone:   make(chan struct{}),
	}
	s.debug = newDebugProbes(s)
	go s.readLoop()
	return s
}

// SessionID returns the id negotiated at bootstrap (empty for
// sessions built with Attach and no explicit id).
func (s *Session) SessionID() string { return s.sessionID }

// Debug exposes the session's introspection probes.
func (s *Session) Debug() *DebugProbes { return s.debug }

// readLoop is the single reader goroutine: it owns Transport.Recv and
// is the only goroutine permitted to call it (spec §4.3/§4.4). Every
// inbound frame is classified and routed to either the registry (a
// command response) or the dispatcher (an event); malformed or
// unattributable frames are logged and dropped, never torn down into
// a session failure (spec §7).
func (s *Session) readLoop() {
	defer close(s.readDone)
	for {
		raw, err := s.transport.Recv(context.Background())
		if err != nil {
			select {
			case <-s.closed:
				return
			default:
			}
			s.teardown(api.Wrap(api.ErrCodeSessionClosed, "transport closed", err))
			return
		}

		env := wire.Classify(raw)
		switch env.Kind {
		case wire.KindSuccess:
			s.registry.Complete(env.ID, env.Result)
		case wire.KindError:
			wireErr := api.Protocol(env.ErrorCode, env.Message, env.Stacktrace)
			if env.HasID {
				s.registry.Fail(env.ID, wireErr)
			} else {
				log.Printf("[session] id-less error frame: %v", wireErr)
			}
		case wire.KindEvent:
			s.dispatcher.Dispatch(env.Method, env.Params)
		case wire.KindOrphan:
			log.Printf("[session] dropping unclassifiable frame (%d bytes)", len(raw))
		}
	}
}

// invoke sends a command with the given method and params and decodes
// the result into a value of type R. It is the single generic
// dispatch point every typed method in the catalogue (browsingcontext.go,
// script.go, ...) funnels through.
func invoke[R any](ctx context.Context, s *Session, method string, params any) (R, error) {
	var zero R

	select {
	case <-s.closed:
		return zero, api.New(api.ErrCodeSessionClosed, "session is closed")
	default:
	}

	id := s.registry.AllocateID()
	frame, err := wire.EncodeCommand(id, method, params)
	if err != nil {
		return zero, api.Wrap(api.ErrCodeSerialisation, "encode "+method, err)
	}

	ch, err := s.registry.Install(id)
	if err != nil {
		return zero, err
	}

	start := time.Now()
	var outcome registry.Outcome
	var invokeErr error

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.CommandTimeout)
	defer cancel()

	if err := s.transport.Send(sendCtx, frame); err != nil {
		s.registry.Cancel(id)
		invokeErr = api.Wrap(api.ErrCodeTransport, "send "+method, err)
		s.trace(id, method, start, invokeErr)
		return zero, invokeErr
	}

	select {
	case outcome = <-ch:
	case <-sendCtx.Done():
		s.registry.Cancel(id)
		invokeErr = api.Wrap(api.ErrCodeTimeout, "no response for "+method, sendCtx.Err())
		s.trace(id, method, start, invokeErr)
		return zero, invokeErr
	case <-s.closed:
		invokeErr = api.New(api.ErrCodeSessionClosed, "session closed while awaiting "+method)
		s.trace(id, method, start, invokeErr)
		return zero, invokeErr
	}

	if outcome.Err != nil {
		s.trace(id, method, start, outcome.Err)
		return zero, outcome.Err
	}

	if len(outcome.Result) == 0 {
		s.trace(id, method, start, nil)
		return zero, nil
	}

	var result R
	ext, err := common.DecodeWithExtensible(outcome.Result, &result)
	if err != nil {
		invokeErr = api.Wrap(api.ErrCodeSerialisation, "decode result of "+method, err)
		s.trace(id, method, start, invokeErr)
		return zero, invokeErr
	}
	common.AttachExtensible(&result, ext)
	s.trace(id, method, start, nil)
	return result, nil
}

func (s *Session) trace(id uint64, method string, start time.Time, err error) {
	if s.cfg.Tracer == nil {
		return
	}
	s.cfg.Tracer.TraceCommand(api.CommandTrace{ID: id, Method: method, Duration: time.Since(start), Err: err})
}

// DecodeEvent decodes an event's raw params into a value of type R,
// preserving any server-supplied keys R's json tags don't name in its
// Extensible field (spec §4.1/§9). Handlers passed to Subscribe should
// decode through this rather than a bare json.Unmarshal so the §8
// decode(encode(x)) == x invariant holds for events too, the same way
// invoke already decodes command results.
func DecodeEvent[R any](params []byte) (R, error) {
	var result R
	ext, err := common.DecodeWithExtensible(params, &result)
	if err != nil {
		var zero R
		return zero, api.Wrap(api.ErrCodeSerialisation, "decode event", err)
	}
	common.AttachExtensible(&result, ext)
	return result, nil
}

// Subscribe registers h for every event named method (e.g.
// browsingcontext.EventNavigationStarted) and issues session.subscribe
// so the remote end starts emitting it. Call the returned
// Subscription's Unsubscribe to stop receiving it and undo the wire
// subscription.
func (s *Session) Subscribe(ctx context.Context, method string, contexts []string, h dispatcher.Handler) (*Subscription, error) {
	sub := s.dispatcher.Subscribe(method, h)

	result, err := s.SessionSubscribe(ctx, []string{method}, contexts)
	if err != nil {
		sub.Unsubscribe()
		return nil, err
	}
	return &Subscription{session: s, local: sub, wireID: result.Subscription, method: method}, nil
}

// Subscription ties a local dispatcher registration to the remote
// subscription id session.subscribe returned.
type Subscription struct {
	session *Session
	local   *dispatcher.Subscription
	wireID  string
	method  string
}

// Unsubscribe issues session.unsubscribe for the wire subscription and
// deregisters the local handler. Safe to call once; a second call is
// a no-op beyond the extra (harmless) wire round trip.
func (s *Subscription) Unsubscribe(ctx context.Context) error {
	s.local.Unsubscribe()
	_, err := s.session.SessionUnsubscribeByID(ctx, []string{s.wireID})
	return err
}

// Close tears the session down per spec §4.6: issues session.end over
// the wire with a bounded timeout, issues the HTTP DELETE bootstrap
// close if a base URL was negotiated, then closes the transport,
// drains the registry (failing every outstanding command with
// ErrCodeSessionClosed), and stops the dispatcher. Idempotent; the
// first caller's transport-close error (if any) is returned, the
// session.end/bootstrap-close errors are logged since teardown must
// proceed regardless.
func (s *Session) Close(ctx context.Context) error {
	var closeErr error
	s.closeOnce.Do(func() {
		endCtx, cancel := context.WithTimeout(ctx, s.cfg.CommandTimeout)
		if _, err := s.SessionEnd(endCtx); err != nil {
			log.Printf("[session] session.end: %v", err)
		}
		cancel()

		if s.baseURL != "" {
			if err := bootstrap.Close(ctx, s.baseURL, s.sessionID, s.cfg.Bootstrap); err != nil {
				log.Printf("[session] bootstrap close: %v", err)
			}
		}

		close(s.closed)
		closeErr = s.transport.Close()
		<-s.readDone
		s.teardown(api.New(api.ErrCodeSessionClosed, "session closed"))
	})
	return closeErr
}

// teardown drains the registry and dispatcher exactly once; called
// either by Close or by the read loop on an unrecoverable transport
// error (spec §7: "On teardown, the set of completed slots plus the
// set of drained slots equals the set of installed slots").
func (s *Session) teardown(err error) {
	s.registry.Drain(err)
	s.dispatcher.Close()
}
