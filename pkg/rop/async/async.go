package async

import (
	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/future"
	"github.com/ib-77/gats/pkg/rop/solo"
)

// Map transforms the success channel once input settles.
func Map[T, R, E any](input *rop.AsyncResult[T, E], onSuccess func(r T) R) *rop.AsyncResult[R, E] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[R, E] {
		return rop.Lift(solo.Map(r, onSuccess))
	})
}

// MapAsync transforms the success channel with a callback that returns a
// pending computation. Its rejection rejects the chain.
func MapAsync[T, R, E any](input *rop.AsyncResult[T, E], onSuccess func(r T) future.Future[R]) *rop.AsyncResult[R, E] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[R, E] {
		return solo.MapAsync(r, onSuccess)
	})
}

// MapError transforms the failure channel once input settles. Each settled
// failure is mapped exactly once, however often the result is awaited.
func MapError[T, E, E2 any](input *rop.AsyncResult[T, E], onError func(err E) E2) *rop.AsyncResult[T, E2] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[T, E2] {
		return rop.Lift(solo.MapError(r, onError))
	})
}

func MapErrorAsync[T, E, E2 any](input *rop.AsyncResult[T, E], onError func(err E) future.Future[E2]) *rop.AsyncResult[T, E2] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[T, E2] {
		return solo.MapErrorAsync(r, onError)
	})
}

// FlatMap chains an immediate Result-returning step.
func FlatMap[T, R, E any](input *rop.AsyncResult[T, E], onSuccess func(r T) rop.Result[R, E]) *rop.AsyncResult[R, E] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[R, E] {
		return rop.Lift(solo.FlatMap(r, onSuccess))
	})
}

// FlatMapAsync chains a step that returns another AsyncResult, such as a
// function built with task.NewAsync.
func FlatMapAsync[T, R, E any](input *rop.AsyncResult[T, E], onSuccess func(r T) *rop.AsyncResult[R, E]) *rop.AsyncResult[R, E] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[R, E] {
		return solo.FlatMapAsync(r, onSuccess)
	})
}

// AttemptMap captures errors and panics of onTryExecute as Err instead of
// rejecting the chain.
func AttemptMap[T, R, E any](input *rop.AsyncResult[T, E], onTryExecute func(r T) (R, error)) *rop.AsyncResult[R, error] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[R, error] {
		return rop.Lift(solo.AttemptMap(r, onTryExecute))
	})
}

func AttemptMapAsync[T, R, E any](input *rop.AsyncResult[T, E], onTryExecute func(r T) future.Future[R]) *rop.AsyncResult[R, error] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[R, error] {
		return solo.AttemptMapAsync(r, onTryExecute)
	})
}

func Tee[T, E any](input *rop.AsyncResult[T, E], onSuccess func(r T)) *rop.AsyncResult[T, E] {
	return rop.Continue(input, func(r rop.Result[T, E]) *rop.AsyncResult[T, E] {
		return rop.Lift(solo.Tee(r, onSuccess))
	})
}

// Finally collapses the settled result into a single value. A rejected chain
// rejects the returned future.
func Finally[T, E, Out any](input *rop.AsyncResult[T, E], onSuccess func(r T) Out, onError func(err E) Out) future.Future[Out] {
	return future.Then(input.Future(), func(r rop.Result[T, E], err error) (Out, error) {
		if err != nil {
			var zero Out
			return zero, err
		}
		return solo.Finally(r, onSuccess, onError), nil
	})
}
