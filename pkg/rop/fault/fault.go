// Package fault converts panics into error values so that throwing code can
// enter the Result algebra at a single, explicit boundary.
package fault

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// PanicError is a recovered panic. Stack holds the goroutine stack at the
// point of recovery.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recovered builds a PanicError from a value returned by recover().
func Recovered(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

// Catch runs f and returns its results. A panic inside f is returned as a
// *PanicError instead of unwinding the caller.
func Catch[T any](f func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = Recovered(r)
		}
	}()
	return f()
}

// Crash panics with v. Errors are kept as-is, anything else is formatted.
func Crash(v any) {
	if err, ok := v.(error); ok {
		panic(err)
	}
	panic(fmt.Errorf("%v", v))
}

// IsPanic reports whether err carries a recovered panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}
