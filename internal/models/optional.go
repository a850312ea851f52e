package models

import "encoding/json"

// Optional holds a row that may legitimately be missing from the store.
// A missing row is not an error; callers decide what the zero fallback is.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a value that was found.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None is the absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present reports whether a value was found.
func (o Optional[T]) Present() bool {
	return o.present
}

// OrZero returns the value, or T's zero value when absent.
func (o Optional[T]) OrZero() T {
	return o.value
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
