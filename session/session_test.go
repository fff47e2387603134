package session

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/momentics/webdriverbidi-go/api"
	"github.com/momentics/webdriverbidi-go/model/browsingcontext"
	"github.com/momentics/webdriverbidi-go/model/log"
	"github.com/momentics/webdriverbidi-go/model/sessioncmd"
	"github.com/momentics/webdriverbidi-go/transport/transporttest"
	"github.com/momentics/webdriverbidi-go/wire"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CommandTimeout = time.Second
	return cfg
}

// awaitSent polls the fake transport until it has sent at least n
// frames, returning the most recently sent command's decoded id.
func awaitSent(t *testing.T, f *transporttest.Fake, n int) uint64 {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sent := f.Sent()
		if len(sent) >= n {
			var cmd wire.Command
			if err := json.Unmarshal(sent[n-1], &cmd); err != nil {
				t.Fatalf("decode sent frame: %v", err)
			}
			return cmd.ID
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for sent frame")
	return 0
}

func TestSessionStatusHappyPath(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-1", testConfig())
	defer s.Close(context.Background())
	defer f.EnableAutoAck()

	resultCh := make(chan sessioncmd.StatusResult, 1)
	errCh := make(chan error, 1)
	go func() {
		r, err := s.SessionStatus(context.Background())
		resultCh <- r
		errCh <- err
	}()

	id := awaitSent(t, f, 1)
	f.Push([]byte(fmt.Sprintf(`{"type":"success","id":%d,"result":{"ready":true,"message":"ok"}}`, id)))

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
	got := <-resultCh
	if !got.Ready || got.Message != "ok" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestBrowsingContextNavigate(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-1", testConfig())
	defer s.Close(context.Background())
	defer f.EnableAutoAck()

	errCh := make(chan error, 1)
	resCh := make(chan browsingcontext.NavigateResult, 1)
	go func() {
		r, err := s.BrowsingContextNavigate(context.Background(), browsingcontext.NavigateParams{
			Context: "ctx-1",
			URL:     "https://example.com",
			Wait:    browsingcontext.ReadinessComplete,
		})
		resCh <- r
		errCh <- err
	}()

	id := awaitSent(t, f, 1)
	sent := f.Sent()[0]
	var cmd wire.Command
	_ = json.Unmarshal(sent, &cmd)
	if cmd.Method != browsingcontext.MethodNavigate {
		t.Fatalf("unexpected method: %s", cmd.Method)
	}
	f.Push([]byte(fmt.Sprintf(`{"type":"success","id":%d,"result":{"navigation":"nav-1","url":"https://example.com"}}`, id)))

	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := <-resCh
	if got.URL != "https://example.com" || got.Navigation == nil || *got.Navigation != "nav-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestInvokeReturnsProtocolError(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-1", testConfig())
	defer s.Close(context.Background())
	defer f.EnableAutoAck()

	errCh := make(chan error, 1)
	go func() {
		_, err := s.SessionStatus(context.Background())
		errCh <- err
	}()

	id := awaitSent(t, f, 1)
	f.Push([]byte(fmt.Sprintf(`{"type":"error","id":%d,"error":"unknown command","message":"nope"}`, id)))

	err := <-errCh
	if err == nil {
		t.Fatal("expected an error")
	}
	if !api.IsCode(err, api.ErrCodeProtocol) {
		t.Fatalf("expected ErrCodeProtocol, got %v", err)
	}
}

func TestInvokeTimesOutWithoutResponse(t *testing.T) {
	f := transporttest.New()
	cfg := testConfig()
	cfg.CommandTimeout = 50 * time.Millisecond
	s := Attach(f, "sess-1", cfg)
	defer s.Close(context.Background())
	defer f.EnableAutoAck()

	_, err := s.SessionStatus(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !api.IsCode(err, api.ErrCodeTimeout) {
		t.Fatalf("expected ErrCodeTimeout, got %v", err)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-1", testConfig())
	defer s.Close(context.Background())
	defer f.EnableAutoAck()

	received := make(chan log.Entry, 1)
	subErrCh := make(chan error, 1)
	var sub *Subscription
	go func() {
		var err error
		sub, err = s.Subscribe(context.Background(), log.EventEntryAdded, nil, func(raw json.RawMessage) {
			entry, _ := DecodeEvent[log.Entry](raw)
			received <- entry
		})
		subErrCh <- err
	}()

	id := awaitSent(t, f, 1)
	f.Push([]byte(fmt.Sprintf(`{"type":"success","id":%d,"result":{"subscription":"sub-1"}}`, id)))

	if err := <-subErrCh; err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	text := "hello"
	f.Push([]byte(`{"type":"event","method":"log.entryAdded","params":{"type":"console","level":"info","source":{"realm":"r1"},"text":"hello","timestamp":1,"method":"log","args":[]}}`))

	select {
	case entry := <-received:
		if entry.Text == nil || *entry.Text != text {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	_ = sub
}

func TestCloseDrainsPendingCommands(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-1", testConfig())

	errCh := make(chan error, 1)
	go func() {
		_, err := s.SessionStatus(context.Background())
		errCh <- err
	}()
	awaitSent(t, f, 1)

	f.EnableAutoAck()
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	err := <-errCh
	if err == nil {
		t.Fatal("expected pending command to fail on teardown")
	}
	if !api.IsCode(err, api.ErrCodeSessionClosed) {
		t.Fatalf("expected ErrCodeSessionClosed, got %v", err)
	}
}

func TestInvokeAfterCloseFailsFast(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-1", testConfig())
	f.EnableAutoAck()
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, err := s.SessionStatus(context.Background())
	if err == nil || !api.IsCode(err, api.ErrCodeSessionClosed) {
		t.Fatalf("expected ErrCodeSessionClosed, got %v", err)
	}
}

func TestDebugProbesReportPendingCount(t *testing.T) {
	f := transporttest.New()
	s := Attach(f, "sess-7", testConfig())
	defer s.Close(context.Background())
	defer f.EnableAutoAck()

	go func() { _, _ = s.SessionStatus(context.Background()) }()
	awaitSent(t, f, 1)

	state := s.Debug().DumpState()
	if state["sessionID"] != "sess-7" {
		t.Fatalf("unexpected sessionID probe: %v", state["sessionID"])
	}
	if n, ok := state["pendingCommands"].(int); !ok || n < 1 {
		t.Fatalf("expected pendingCommands >= 1, got %v", state["pendingCommands"])
	}
}
