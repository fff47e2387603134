package common

import (
	"encoding/json"
	"testing"
)

type sample struct {
	Name string `json:"name"`
	Age  int    `json:"age"`

	Extensible Extensible `json:"-"`
}

func TestDecodeWithExtensiblePreservesUnknownKeys(t *testing.T) {
	raw := json.RawMessage(`{"name":"ada","age":36,"bonus":"x-field","nested":{"a":1}}`)
	var s sample
	ext, err := DecodeWithExtensible(raw, &s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Name != "ada" || s.Age != 36 {
		t.Fatalf("known fields not decoded: %+v", s)
	}
	if len(ext) != 2 {
		t.Fatalf("expected 2 extension keys, got %d: %v", len(ext), ext)
	}
	var bonus string
	if ok, err := ext.Get("bonus", &bonus); !ok || err != nil || bonus != "x-field" {
		t.Fatalf("bonus field not preserved: ok=%v err=%v value=%q", ok, err, bonus)
	}
}

func TestEncodeWithExtensibleRoundTrips(t *testing.T) {
	s := sample{Name: "ada", Age: 36}
	ext := Extensible{}
	_ = ext.Set("bonus", "x-field")

	out, err := EncodeWithExtensible(&s, ext)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded sample
	ext2, err := DecodeWithExtensible(out, &decoded)
	if err != nil {
		t.Fatalf("redecode: %v", err)
	}
	if decoded.Name != "ada" || decoded.Age != 36 {
		t.Fatalf("round trip lost known fields: %+v", decoded)
	}
	var bonus string
	if ok, _ := ext2.Get("bonus", &bonus); !ok || bonus != "x-field" {
		t.Fatalf("round trip lost extension field")
	}
}

func TestAttachExtensibleSetsField(t *testing.T) {
	s := &sample{}
	ext := Extensible{}
	_ = ext.Set("k", 1)
	AttachExtensible(s, ext)
	if len(s.Extensible) != 1 {
		t.Fatalf("expected Extensible to be set, got %v", s.Extensible)
	}
}

type base struct {
	Context string `json:"context"`
}

type withEmbeddedBase struct {
	base
	Extra string `json:"extra"`

	Extensible Extensible `json:"-"`
}

func TestDecodeWithExtensibleFlattensAnonymousFields(t *testing.T) {
	raw := json.RawMessage(`{"context":"ctx-1","extra":"e","unknown":"u"}`)
	var v withEmbeddedBase
	ext, err := DecodeWithExtensible(raw, &v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Context != "ctx-1" || v.Extra != "e" {
		t.Fatalf("embedded/own fields not decoded: %+v", v)
	}
	if _, ok := ext["context"]; ok {
		t.Fatalf("promoted field %q incorrectly treated as unknown: %v", "context", ext)
	}
	if _, ok := ext["unknown"]; !ok {
		t.Fatalf("expected %q to be preserved as an extension key: %v", "unknown", ext)
	}
}

func TestValidateJsUintRejectsOutOfRange(t *testing.T) {
	if err := ValidateJsUint(MaxSafeInteger); err == nil {
		t.Fatal("expected error at boundary")
	}
	if err := ValidateJsUint(MaxSafeInteger - 1); err != nil {
		t.Fatalf("unexpected error just below boundary: %v", err)
	}
}
