package api

import (
	"errors"
	"testing"
)

func TestProtocolErrorCarriesWireCode(t *testing.T) {
	err := Protocol(WireNoSuchFrame, "frame gone", "stack...")
	if err.Code != ErrCodeProtocol || err.WireCode != WireNoSuchFrame {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !IsCode(err, ErrCodeProtocol) {
		t.Fatal("IsCode should match ErrCodeProtocol")
	}
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrCodeTransport, "send failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the wrapped cause")
	}
}

func TestWithContextAttachesFields(t *testing.T) {
	err := New(ErrCodeTimeout, "no response").WithContext("method", "session.status")
	if err.Context["method"] != "session.status" {
		t.Fatalf("unexpected context: %v", err.Context)
	}
}

func TestIsCodeFalseForPlainError(t *testing.T) {
	if IsCode(errors.New("plain"), ErrCodeProtocol) {
		t.Fatal("expected false for a non-*Error")
	}
}
