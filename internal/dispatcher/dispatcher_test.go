package dispatcher

import (
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestDispatchDeliversToSubscriber(t *testing.T) {
	d := New()
	defer d.Close()

	received := make(chan json.RawMessage, 1)
	sub := d.Subscribe("log.entryAdded", func(p json.RawMessage) { received <- p })
	defer sub.Unsubscribe()

	d.Dispatch("log.entryAdded", json.RawMessage(`{"level":"info"}`))

	select {
	case p := <-received:
		if string(p) != `{"level":"info"}` {
			t.Fatalf("unexpected params: %s", p)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestDispatchIgnoresUnrelatedMethod(t *testing.T) {
	d := New()
	defer d.Close()

	received := make(chan struct{}, 1)
	sub := d.Subscribe("log.entryAdded", func(json.RawMessage) { received <- struct{}{} })
	defer sub.Unsubscribe()

	d.Dispatch("browsingContext.load", json.RawMessage(`{}`))

	select {
	case <-received:
		t.Fatal("handler should not have fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := New()
	defer d.Close()

	var mu sync.Mutex
	count := 0
	sub := d.Subscribe("log.entryAdded", func(json.RawMessage) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	sub.Unsubscribe()

	d.Dispatch("log.entryAdded", json.RawMessage(`{}`))
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Fatalf("expected 0 deliveries after unsubscribe, got %d", count)
	}
}

func TestDispatchPreservesOrderPerSubscriber(t *testing.T) {
	d := New()
	defer d.Close()

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})
	sub := d.Subscribe("script.message", func(p json.RawMessage) {
		var n int
		_ = json.Unmarshal(p, &n)
		mu.Lock()
		order = append(order, n)
		if len(order) == 5 {
			close(done)
		}
		mu.Unlock()
	})
	defer sub.Unsubscribe()

	for i := 0; i < 5; i++ {
		raw, _ := json.Marshal(i)
		d.Dispatch("script.message", raw)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		if v != i {
			t.Fatalf("out of order delivery: %v", order)
		}
	}
}
