package registry

import (
	"encoding/json"
	"testing"

	"github.com/momentics/webdriverbidi-go/api"
)

func TestInstallCompleteRoundTrip(t *testing.T) {
	r := New()
	id := r.AllocateID()
	ch, err := r.Install(id)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	want := json.RawMessage(`{"ready":true}`)
	if ok := r.Complete(id, want); !ok {
		t.Fatal("Complete reported no waiter")
	}
	out := <-ch
	if out.Err != nil || string(out.Result) != string(want) {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if r.Len() != 0 {
		t.Fatalf("expected 0 pending, got %d", r.Len())
	}
}

func TestCompleteOrphanReturnsFalse(t *testing.T) {
	r := New()
	if r.Complete(999, nil) {
		t.Fatal("expected false for unknown id")
	}
}

func TestInstallDuplicateIDFails(t *testing.T) {
	r := New()
	id := r.AllocateID()
	if _, err := r.Install(id); err != nil {
		t.Fatalf("first Install: %v", err)
	}
	if _, err := r.Install(id); err == nil {
		t.Fatal("expected error installing duplicate id")
	}
}

func TestCancelDropsSlotSilently(t *testing.T) {
	r := New()
	id := r.AllocateID()
	if _, err := r.Install(id); err != nil {
		t.Fatalf("Install: %v", err)
	}
	r.Cancel(id)
	if r.Complete(id, nil) {
		t.Fatal("expected cancelled id to be treated as orphan")
	}
}

func TestDrainFailsEveryPendingSlot(t *testing.T) {
	r := New()
	id1 := r.AllocateID()
	id2 := r.AllocateID()
	ch1, _ := r.Install(id1)
	ch2, _ := r.Install(id2)

	sentinel := api.New(api.ErrCodeSessionClosed, "torn down")
	r.Drain(sentinel)

	out1 := <-ch1
	out2 := <-ch2
	if out1.Err != sentinel || out2.Err != sentinel {
		t.Fatalf("expected sentinel error on both, got %+v %+v", out1, out2)
	}
	if _, err := r.Install(r.AllocateID()); err == nil {
		t.Fatal("expected Install to fail after Drain")
	}
}

func TestAllocateIDIsMonotonic(t *testing.T) {
	r := New()
	prev := r.AllocateID()
	for i := 0; i < 100; i++ {
		next := r.AllocateID()
		if next <= prev {
			t.Fatalf("ids not monotonic: %d then %d", prev, next)
		}
		prev = next
	}
}
