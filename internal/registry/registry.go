// File: internal/registry/registry.go
// Package registry implements the pending-command registry (spec
// §4.4): a map from command id to a one-shot completion slot that the
// background read loop fills in when a matching response arrives.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grounded on the teacher's internal/session sessionManager/sessionImpl
// pair (store.go, cancel.go): a single mutex guarding a plain map, and
// a one-shot "Done" signal per entry. The teacher shards its map
// across power-of-two buckets for throughput; this registry keeps a
// single mutex instead, because spec §4.4 requires "every mutation is
// guarded by a mutex" (singular) and a command registry's critical
// section is already O(1) map access — sharding would add complexity
// the spec's own concurrency model doesn't ask for.
package registry

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/momentics/webdriverbidi-go/api"
)

// Outcome is what a pending slot resolves to: either a decoded
// success result or a protocol/session error.
type Outcome struct {
	Result json.RawMessage
	Err    error
}

// Registry maps in-flight command ids to their completion slot.
type Registry struct {
	mu      sync.Mutex
	pending map[uint64]chan Outcome
	nextID  uint64 // accessed only via atomic ops
	drained bool
}

// New constructs an empty registry. ids are allocated starting at 1.
func New() *Registry {
	return &Registry{pending: make(map[uint64]chan Outcome)}
}

// AllocateID returns the next command id, strictly monotonically
// increasing and unique within the registry's lifetime (spec §3/§4.4).
func (r *Registry) AllocateID() uint64 {
	return atomic.AddUint64(&r.nextID, 1)
}

// Install creates a completion slot for id before the frame is
// written to the socket (spec §4.4 precondition: no existing entry
// for id). Returns the channel the caller awaits for the single
// delivered Outcome.
func (r *Registry) Install(id uint64) (<-chan Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drained {
		return nil, api.New(api.ErrCodeSessionClosed, "registry is drained")
	}
	if _, exists := r.pending[id]; exists {
		return nil, fmt.Errorf("registry: id %d already has a pending slot", id)
	}
	ch := make(chan Outcome, 1)
	r.pending[id] = ch
	return ch, nil
}

// Complete delivers a success result to id's waiter and evicts the
// slot. Returns false if id had no pending slot (an orphan response,
// spec §4.4: "logged; dropped").
func (r *Registry) Complete(id uint64, result json.RawMessage) bool {
	return r.deliver(id, Outcome{Result: result})
}

// Fail delivers an error to id's waiter and evicts the slot. Same
// orphan semantics as Complete.
func (r *Registry) Fail(id uint64, err error) bool {
	return r.deliver(id, Outcome{Err: err})
}

func (r *Registry) deliver(id uint64, out Outcome) bool {
	r.mu.Lock()
	ch, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	r.mu.Unlock()
	if !ok {
		log.Printf("[registry] orphan response for id=%d (no pending waiter)", id)
		return false
	}
	ch <- out
	return true
}

// Cancel evicts id's slot without delivering anything — used when a
// caller's own timeout or context cancellation fires first. A later
// response for this id then finds no entry and is dropped as an
// orphan (spec §5: "ids are never reused, so merely discarding the
// slot is sufficient").
func (r *Registry) Cancel(id uint64) {
	r.mu.Lock()
	delete(r.pending, id)
	r.mu.Unlock()
}

// Drain fails every outstanding slot with err and marks the registry
// closed so subsequent Install calls fail fast (spec §4.4/§7: used on
// teardown; "On teardown, the set of completed slots plus the set of
// drained slots equals the set of installed slots").
func (r *Registry) Drain(err error) {
	r.mu.Lock()
	pending := r.pending
	r.pending = make(map[uint64]chan Outcome)
	r.drained = true
	r.mu.Unlock()

	for id, ch := range pending {
		ch <- Outcome{Err: err}
		_ = id
	}
}

// Len reports the number of outstanding slots, for debug introspection.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
