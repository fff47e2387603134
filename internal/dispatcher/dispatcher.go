// File: internal/dispatcher/dispatcher.go
// Package dispatcher implements the event dispatcher (spec §4.5): it
// maps an event's method name to its registered subscribers and fans
// each inbound event out to them without blocking the read loop that
// feeds it, and without blocking command-response traffic.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grounded on the teacher's control/hotreload.go hook-list pattern
// for the subscription table shape, generalized from a single global
// hook list to a per-method list of queued subscribers. Each
// subscriber drains its own github.com/eapache/queue FIFO (the
// teacher's own go.mod dependency) on a private goroutine, so
// Dispatch itself never does more than push-and-signal: a slow
// handler stalls only its own subscriber, never the read loop and
// never a concurrent command's response delivery (spec §4.5/§5).
package dispatcher

import (
	"encoding/json"
	"sync"

	"github.com/eapache/queue"
)

// Handler receives one event's decoded params. It runs on the
// subscriber's private goroutine, not the read loop: Dispatch only
// queues the event, so the read loop keeps delivering command
// responses while a handler runs, and a handler may wait on a command
// of the same session. A handler that never returns stalls only its
// own subscription's later events.
type Handler func(params json.RawMessage)

// Dispatcher fans events out to subscribers keyed by method name.
type Dispatcher struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]*subscriber
	nextID uint64
}

// New constructs an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{subs: make(map[string]map[uint64]*subscriber)}
}

// Subscription is returned by Subscribe; call Unsubscribe to stop
// receiving events and release the subscriber's goroutine.
type Subscription struct {
	d      *Dispatcher
	method string
	id     uint64
}

// Unsubscribe deregisters the handler and drains its goroutine.
func (s *Subscription) Unsubscribe() {
	s.d.mu.Lock()
	bucket := s.d.subs[s.method]
	sub, ok := bucket[s.id]
	if ok {
		delete(bucket, s.id)
		if len(bucket) == 0 {
			delete(s.d.subs, s.method)
		}
	}
	s.d.mu.Unlock()
	if ok {
		sub.close()
	}
}

// Subscribe registers h for every event whose method equals name.
func (d *Dispatcher) Subscribe(method string, h Handler) *Subscription {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	bucket, ok := d.subs[method]
	if !ok {
		bucket = make(map[uint64]*subscriber)
		d.subs[method] = bucket
	}
	sub := newSubscriber(h)
	bucket[id] = sub
	d.mu.Unlock()

	go sub.run()
	return &Subscription{d: d, method: method, id: id}
}

// Dispatch fans params out to every subscriber currently registered
// for method, in registration-independent fashion — each subscriber
// receives it on its own FIFO goroutine. Dispatch never blocks on a
// handler and preserves, for a single subscriber, the order events
// arrived on the wire (spec §5: "Event delivery to a single
// subscriber preserves server-emitted order for that event name").
func (d *Dispatcher) Dispatch(method string, params json.RawMessage) {
	d.mu.RLock()
	bucket := d.subs[method]
	targets := make([]*subscriber, 0, len(bucket))
	for _, sub := range bucket {
		targets = append(targets, sub)
	}
	d.mu.RUnlock()

	for _, sub := range targets {
		sub.push(params)
	}
}

// Close stops every subscriber's goroutine; used on session teardown.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	all := d.subs
	d.subs = make(map[string]map[uint64]*subscriber)
	d.mu.Unlock()

	for _, bucket := range all {
		for _, sub := range bucket {
			sub.close()
		}
	}
}

// subscriber serializes delivery of one handler's events through a
// private FIFO and goroutine.
type subscriber struct {
	mu      sync.Mutex
	cond    *sync.Cond
	q       *queue.Queue
	closed  bool
	handler Handler
}

func newSubscriber(h Handler) *subscriber {
	s := &subscriber{q: queue.New(), handler: h}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *subscriber) push(params json.RawMessage) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.q.Add(params)
	s.cond.Signal()
	s.mu.Unlock()
}

func (s *subscriber) run() {
	for {
		s.mu.Lock()
		for s.q.Length() == 0 && !s.closed {
			s.cond.Wait()
		}
		if s.q.Length() == 0 && s.closed {
			s.mu.Unlock()
			return
		}
		params := s.q.Remove().(json.RawMessage)
		s.mu.Unlock()

		s.handler(params)
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}
