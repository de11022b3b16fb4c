package optops

import "fmt"

// Option is a container that either holds a value of type T or is empty.
// The zero value is None.
// Options over comparable payload types are comparable with ==, and two
// options are equal when both are None or both hold equal payloads.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and whether it was present.
// If o is None, the value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet is like [Option.Get] but panics if o is None.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(fmt.Sprintf("MustGet() failed: option of type %T is empty", o.value))
	}
	return o.value
}

// Or returns the held value if o is Some, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String implements the [fmt.Stringer] interface.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map returns None if o is None, otherwise an option holding f applied
// to the held value.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
