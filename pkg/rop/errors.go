package rop

import (
	"fmt"

	"github.com/google/uuid"
)

// NoValueError signals that an absent Option was turned into a Result.
type NoValueError struct{}

func (NoValueError) Error() string {
	return "expected a value but found none"
}

// ErrNoValue is the NoValueError produced by ToResult and AttemptMap on None.
var ErrNoValue error = NoValueError{}

// RejectionError is the terminal state of a deferred chain whose pending
// computation was rejected outside of AttemptMap or a Task. It is a defect,
// not a classified failure: Await panics with it and AwaitContext returns it.
type RejectionError struct {
	ID    uuid.UUID
	Cause error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("uncaught rejection in async result %s: %v", e.ID, e.Cause)
}

func (e *RejectionError) Unwrap() error {
	return e.Cause
}

// ValueError carries a failure that is not an error value through an error
// channel.
type ValueError[E any] struct {
	Value E
}

func (e *ValueError[E]) Error() string {
	return fmt.Sprint(e.Value)
}

// AsError returns e itself when it is an error and wraps it in a ValueError
// otherwise. A nil failure carries no information and becomes ErrNoValue.
func AsError[E any](e E) error {
	if any(e) == nil {
		return ErrNoValue
	}
	if err, ok := any(e).(error); ok {
		return err
	}
	return &ValueError[E]{Value: e}
}

// Unjoin flattens errors built with errors.Join, nested joins included, into
// their leaves. A nil err has no parts.
func Unjoin(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var parts []error
	for _, part := range joined.Unwrap() {
		parts = append(parts, Unjoin(part)...)
	}
	return parts
}
