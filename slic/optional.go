package slic

import "fmt"

// Optional holds a value that may be absent. A field of type Optional[T]
// makes the positional argument bound to it optional; for options it lets
// the caller tell "never given" apart from "given the zero value".
type Optional[T comparable] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value was assigned.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value if present, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Equal reports whether both are absent, or both present with equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return o.value == other.value
}

func (o Optional[T]) String() string {
	if !o.present {
		return "<none>"
	}
	return fmt.Sprint(o.value)
}

func (o *Optional[T]) set(v T) {
	o.value = v
	o.present = true
}
