// Package optional provides a value type that distinguishes "absent" from
// the zero value, used by partial-update request bodies.
package optional

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Value holds a T that may or may not be present.
// The zero Value is absent.
type Value[T any] struct {
	value T
	set   bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet reports whether a value is present.
func (o Value[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value when present, fallback otherwise.
func (o Value[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Apply stores the value into dst when present.
func (o Value[T]) Apply(dst *T) {
	if o.set {
		*dst = o.value
	}
}

// UnmarshalJSON treats a JSON null the same as an omitted key.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

// MarshalJSON writes null for an absent value.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return nullLiteral, nil
	}
	return json.Marshal(o.value)
}
