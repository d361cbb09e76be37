package solo

import (
	"errors"
	"reflect"

	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/fault"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Ok[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Err[T](err)
}

// Map transforms the success channel. f is never called for a failure.
func Map[T, R, E any](input rop.Result[T, E], onSuccess func(r T) R) rop.Result[R, E] {
	if input.IsOk() {
		return rop.Ok[R, E](onSuccess(input.Value()))
	}
	return rop.Err[R](input.Failure())
}

// MapError transforms the failure channel. f is never called for a success.
// The mapped failure is final: a later MapError returns it unchanged, unless
// its error is not an E2, in which case onError is applied again.
func MapError[T, E, E2 any](input rop.Result[T, E], onError func(err E) E2) rop.Result[T, E2] {
	if input.IsOk() {
		return rop.Ok[T, E2](input.Value())
	}
	if same, ok := rop.Remapped[T, E, E2](input); ok {
		return same
	}
	return rop.MappedErr[T](onError(input.Failure()))
}

// FlatMap returns whatever onSuccess returns for a success. A failure is
// forwarded untouched.
func FlatMap[T, R, E any](input rop.Result[T, E], onSuccess func(r T) rop.Result[R, E]) rop.Result[R, E] {
	if input.IsOk() {
		return onSuccess(input.Value())
	}
	return rop.Err[R](input.Failure())
}

// AttemptMap calls onTryExecute for a success. A returned error or a panic
// becomes Err; a failure of input is forwarded as an error.
func AttemptMap[T, R, E any](input rop.Result[T, E], onTryExecute func(r T) (R, error)) rop.Result[R, error] {
	if input.IsErr() {
		return rop.Err[R](rop.AsError(input.Failure()))
	}

	out, err := fault.Catch(func() (R, error) {
		return onTryExecute(input.Value())
	})
	if err != nil {
		return rop.Err[R](err)
	}
	return rop.Ok[R, error](out)
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if input.IsOk() {
		onSuccess(input.Value())
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E], onSuccess func(r T), onError func(err E)) rop.Result[T, E] {
	if input.IsOk() {
		onSuccess(input.Value())
	} else {
		onError(input.Failure())
	}
	return input
}

// Finally collapses the result into a single value.
func Finally[T, E, Out any](input rop.Result[T, E], onSuccess func(r T) Out, onError func(err E) Out) Out {
	if input.IsOk() {
		return onSuccess(input.Value())
	}
	return onError(input.Failure())
}

func FailOnError[T any](input rop.Result[T, error], maybeErr func(in T) error) rop.Result[T, error] {
	if input.IsOk() {
		if err := maybeErr(input.Value()); err != nil {
			return rop.Err[T](err)
		}
	}
	return input
}

// Validate turns a success that fails validate into Err(invalid(value)).
func Validate[T, E any](input rop.Result[T, E], validate func(in T) bool, invalid func(in T) E) rop.Result[T, E] {
	if input.IsOk() && !validate(input.Value()) {
		return rop.Err[T](invalid(input.Value()))
	}
	return input
}

// ValidateAll runs every validator against input. Failures are joined with
// errors.Join unless breakOnError stops at the first one.
func ValidateAll[T any](input rop.Result[T, error], breakOnError bool,
	validators ...func(in T) error) rop.Result[T, error] {

	if input.IsErr() {
		return input
	}

	var err error
	for _, validate := range validators {
		current := validate(input.Value())
		if isNil(current) {
			continue
		}
		err = errors.Join(append(rop.Unjoin(err), current)...)
		if breakOnError {
			break
		}
	}

	if isNil(err) {
		return input
	}
	return rop.Err[T](err)
}

// isNil also catches a typed nil pointer stored in the error interface.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Or returns the first success, or the last failure when none succeeded.
func Or[T, E any](input rop.Result[T, E], alternatives ...rop.Result[T, E]) rop.Result[T, E] {
	if input.IsOk() {
		return input
	}
	last := input
	for _, alt := range alternatives {
		if alt.IsOk() {
			return alt
		}
		last = alt
	}
	return last
}
