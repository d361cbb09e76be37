package rop

import (
	"github.com/ib-77/gats/pkg/rop/future"
)

// AsyncResult is a Result that is not known yet. It moves from Pending to Ok
// or Err exactly once and afterwards behaves like the Result it settled to.
// Operators for it live in package async; Await turns it back into a Result.
//
// A chain can also end rejected, when a pending computation fails outside of
// AttemptMap or a Task. That is a defect rather than a failure of type E and
// is reported by AwaitContext as a *RejectionError.
type AsyncResult[T, E any] struct {
	*deferred[Result[T, E]]
}

// Lift wraps an immediate Result. The returned value is already settled.
func Lift[T, E any](r Result[T, E]) *AsyncResult[T, E] {
	return &AsyncResult[T, E]{newDeferred(future.Immediate(r))}
}

// FromFuture adopts a pending Result. A rejection of f becomes a rejection of
// the chain.
func FromFuture[T, E any](f future.Future[Result[T, E]]) *AsyncResult[T, E] {
	return &AsyncResult[T, E]{fromFuture(f)}
}

// AsyncOk settles to Ok with the value f fulfills.
func AsyncOk[T, E any](f future.Future[T]) *AsyncResult[T, E] {
	return FromFuture(future.Then(f, func(value T, err error) (Result[T, E], error) {
		if err != nil {
			return Result[T, E]{}, err
		}
		return Ok[T, E](value), nil
	}))
}

// AsyncErr settles to Err with the error value f fulfills.
func AsyncErr[T, E any](f future.Future[E]) *AsyncResult[T, E] {
	return FromFuture(future.Then(f, func(e E, err error) (Result[T, E], error) {
		if err != nil {
			return Result[T, E]{}, err
		}
		return Err[T](e), nil
	}))
}

// Continue runs step once a settles to a Result and adopts the AsyncResult
// step returns. Steps of one chain never overlap: step starts only after a has
// settled. A rejected a skips step; a panic in step rejects the new chain.
func Continue[T, E, R, E2 any](a *AsyncResult[T, E], step func(Result[T, E]) *AsyncResult[R, E2]) *AsyncResult[R, E2] {
	return &AsyncResult[R, E2]{continueDeferred(a.deferred, func(r Result[T, E]) *deferred[Result[R, E2]] {
		next := step(r)
		if next == nil {
			return nil
		}
		return next.deferred
	})}
}

// Ok resolves to Some(value) when the chain settles to Ok and to None
// otherwise.
func (a *AsyncResult[T, E]) Ok() *AsyncOption[T] {
	return FromFutureOption(future.Then(a.f, func(r Result[T, E], err error) (Option[T], error) {
		return r.Ok(), err
	}))
}

// Err resolves to Some(error) when the chain settles to Err and to None
// otherwise.
func (a *AsyncResult[T, E]) Err() *AsyncOption[E] {
	return FromFutureOption(future.Then(a.f, func(r Result[T, E], err error) (Option[E], error) {
		return r.Err(), err
	}))
}

// IsOk resolves to the discriminant of the settled Result.
func (a *AsyncResult[T, E]) IsOk() future.Future[bool] {
	return future.Then(a.f, func(r Result[T, E], err error) (bool, error) {
		return r.IsOk(), err
	})
}
