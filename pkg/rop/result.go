package rop

import "fmt"

// Result is the outcome of a computation: Ok with a value of type T or Err
// with an error of type E. Exactly one channel is populated and the
// discriminant never changes after construction. The zero value is an Err
// carrying the zero E.
//
// A failure produced by MapError is marked as mapped. A mapped failure is
// final: later MapError steps on it return it unchanged.
type Result[T, E any] struct {
	value  T
	err    E
	ok     bool
	mapped bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// MappedErr returns a failure that later MapError steps leave unchanged.
func MappedErr[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:    err,
		mapped: true,
	}
}

// Remapped returns the mapped failure of r as a Result[T, E2]. It reports
// false when r is not a mapped failure or its error is not an E2.
func Remapped[T, E, E2 any](r Result[T, E]) (Result[T, E2], bool) {
	if !r.Mapped() {
		return Result[T, E2]{}, false
	}
	err, ok := any(r.err).(E2)
	if !ok {
		return Result[T, E2]{}, false
	}
	return MappedErr[T](err), true
}

// FromPair converts a Go (value, error) pair.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Mapped reports whether r is a failure produced by MapError.
func (r Result[T, E]) Mapped() bool {
	return !r.ok && r.mapped
}

// Value returns the success value, or the zero T for a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Failure returns the error, or the zero E for a success.
func (r Result[T, E]) Failure() E {
	return r.err
}

// Ok projects the success channel.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err projects the failure channel.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Unpack returns both channels and the discriminant.
func (r Result[T, E]) Unpack() (T, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
