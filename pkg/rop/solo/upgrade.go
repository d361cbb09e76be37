package solo

import (
	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/fault"
	"github.com/ib-77/gats/pkg/rop/future"
)

// MapAsync is Map with a callback that returns a pending computation. The
// chain becomes an AsyncResult; a rejection of the returned future rejects
// the chain.
func MapAsync[T, R, E any](input rop.Result[T, E], onSuccess func(r T) future.Future[R]) *rop.AsyncResult[R, E] {
	if input.IsErr() {
		return rop.Lift(rop.Err[R](input.Failure()))
	}
	return rop.AsyncOk[R, E](onSuccess(input.Value()))
}

// MapErrorAsync is MapError with a callback that returns a pending
// computation. An already mapped failure is lifted unchanged.
func MapErrorAsync[T, E, E2 any](input rop.Result[T, E], onError func(err E) future.Future[E2]) *rop.AsyncResult[T, E2] {
	if input.IsOk() {
		return rop.Lift(rop.Ok[T, E2](input.Value()))
	}
	if same, ok := rop.Remapped[T, E, E2](input); ok {
		return rop.Lift(same)
	}
	return rop.FromFuture(future.Then(onError(input.Failure()), func(e E2, err error) (rop.Result[T, E2], error) {
		if err != nil {
			return rop.Result[T, E2]{}, err
		}
		return rop.MappedErr[T](e), nil
	}))
}

// FlatMapAsync is FlatMap with a callback that returns an AsyncResult.
func FlatMapAsync[T, R, E any](input rop.Result[T, E], onSuccess func(r T) *rop.AsyncResult[R, E]) *rop.AsyncResult[R, E] {
	if input.IsErr() {
		return rop.Lift(rop.Err[R](input.Failure()))
	}
	return onSuccess(input.Value())
}

// AttemptMapAsync is AttemptMap with a callback that returns a pending
// computation. A panic while starting it or a rejection of the returned
// future becomes Err.
func AttemptMapAsync[T, R, E any](input rop.Result[T, E], onTryExecute func(r T) future.Future[R]) *rop.AsyncResult[R, error] {
	if input.IsErr() {
		return rop.Lift(rop.Err[R](rop.AsError(input.Failure())))
	}

	pending, err := fault.Catch(func() (future.Future[R], error) {
		return onTryExecute(input.Value()), nil
	})
	if err != nil {
		return rop.Lift(rop.Err[R](err))
	}
	return rop.FromFuture(future.Then(pending, func(out R, err error) (rop.Result[R, error], error) {
		return rop.FromPair(out, err), nil
	}))
}
