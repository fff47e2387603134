// File: model/common/common.go
// Package common
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared scalar types and the extensible-field bag used across every
// wire schema module. Grounded on the open-ended "Extensible" object
// the W3C BiDi spec permits on almost every payload.

package common

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// MaxSafeInteger is the upper bound (exclusive) of the wire's uint53 range.
const MaxSafeInteger = uint64(1) << 53

// JsUint is a non-negative integer drawn from the JS safe-integer range.
type JsUint uint64

// JsInt is a signed integer drawn from the JS safe-integer range.
type JsInt int64

// ValidateJsUint rejects ids or counters outside the safe-integer range.
func ValidateJsUint(v uint64) error {
	if v >= MaxSafeInteger {
		return fmt.Errorf("value %d exceeds the safe-integer range", v)
	}
	return nil
}

// Extensible holds unknown trailing JSON keys so a decode-then-encode
// round trip never drops server- or client-supplied extension fields.
// Structs carry it as a field named Extensible tagged `json:"-"`;
// DecodeWithExtensible and AttachExtensible fill it, and
// EncodeWithExtensible flattens it back alongside the named fields.
type Extensible map[string]json.RawMessage

// Set stores an arbitrary value under key, replacing any prior entry.
func (e *Extensible) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("extensible: marshal %q: %w", key, err)
	}
	if *e == nil {
		*e = Extensible{}
	}
	(*e)[key] = raw
	return nil
}

// Get decodes the value stored under key into out.
func (e Extensible) Get(key string, out any) (bool, error) {
	raw, ok := e[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("extensible: unmarshal %q: %w", key, err)
	}
	return true, nil
}

// MergeKnown removes from a raw object the keys already consumed by a
// struct's named fields, leaving the remainder as the Extensible bag.
// known lists the JSON keys the caller already decoded explicitly.
func MergeKnown(raw map[string]json.RawMessage, known ...string) Extensible {
	skip := make(map[string]struct{}, len(known))
	for _, k := range known {
		skip[k] = struct{}{}
	}
	out := Extensible{}
	for k, v := range raw {
		if _, ok := skip[k]; ok {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Flatten merges the extensible bag into a pre-marshaled set of known
// fields, producing the final outbound JSON object. known must already
// be a JSON object (`{...}`).
func Flatten(known json.RawMessage, ext Extensible) (json.RawMessage, error) {
	if len(ext) == 0 {
		return known, nil
	}
	var knownMap map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownMap); err != nil {
		return nil, err
	}
	if knownMap == nil {
		knownMap = map[string]json.RawMessage{}
	}
	for k, v := range ext {
		if _, exists := knownMap[k]; !exists {
			knownMap[k] = v
		}
	}
	return json.Marshal(knownMap)
}

// knownJSONKeys reflects over target's struct tags to find the JSON
// keys it already accounts for, so callers need not hand-maintain a
// parallel list of field names alongside every result/event struct.
// Anonymous embedded structs (e.g. network.BaseParameters) are
// flattened, mirroring how encoding/json itself promotes their fields.
func knownJSONKeys(target any) []string {
	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		if f.Anonymous && tag == "" {
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				keys = append(keys, knownJSONKeys(reflect.New(ft).Interface())...)
				continue
			}
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		keys = append(keys, name)
	}
	return keys
}

// DecodeWithExtensible unmarshals raw into target (a pointer to a
// struct tagged with the wire's known fields) and returns whatever
// top-level keys target's tags don't account for, so a decode-encode
// round trip preserves server-supplied extension fields (spec §4.1,
// §9 "Extensible objects").
func DecodeWithExtensible(raw json.RawMessage, target any) (Extensible, error) {
	if err := json.Unmarshal(raw, target); err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return MergeKnown(m, knownJSONKeys(target)...), nil
}

// EncodeWithExtensible marshals target and merges ext's leftover keys
// back in, the inverse of DecodeWithExtensible.
func EncodeWithExtensible(target any, ext Extensible) (json.RawMessage, error) {
	known, err := json.Marshal(target)
	if err != nil {
		return nil, err
	}
	return Flatten(known, ext)
}

// AttachExtensible sets target's "Extensible" field (if it has one of
// type Extensible) to ext. Lets a single generic decode helper serve
// every result/event struct in the catalogue without each one
// implementing its own setter.
func AttachExtensible(target any, ext Extensible) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	f := v.FieldByName("Extensible")
	if f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf(Extensible{}) {
		f.Set(reflect.ValueOf(ext))
	}
}
