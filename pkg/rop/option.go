package rop

import "fmt"

// Option is either Some value or None. The zero value is None, so every None
// of a given T is interchangeable with every other.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the value when present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// ToResult turns Some into Ok and None into Err(ErrNoValue).
func (o Option[T]) ToResult() Result[T, error] {
	if o.some {
		return Ok[T, error](o.value)
	}
	return Err[T](ErrNoValue)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
