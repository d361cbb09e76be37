package rop

import (
	"github.com/ib-77/gats/pkg/rop/future"
)

// AsyncOption is an Option that is not known yet. It comes out of Option
// operators whose callback returned a pending computation and out of the
// Ok/Err projections of an AsyncResult.
type AsyncOption[T any] struct {
	*deferred[Option[T]]
}

// LiftOption wraps an immediate Option. The returned value is already
// settled.
func LiftOption[T any](o Option[T]) *AsyncOption[T] {
	return &AsyncOption[T]{newDeferred(future.Immediate(o))}
}

// FromFutureOption adopts a pending Option.
func FromFutureOption[T any](f future.Future[Option[T]]) *AsyncOption[T] {
	return &AsyncOption[T]{fromFuture(f)}
}

// ContinueOption runs step once o settles and adopts the AsyncOption step
// returns.
func ContinueOption[T, R any](o *AsyncOption[T], step func(Option[T]) *AsyncOption[R]) *AsyncOption[R] {
	return &AsyncOption[R]{continueDeferred(o.deferred, func(opt Option[T]) *deferred[Option[R]] {
		next := step(opt)
		if next == nil {
			return nil
		}
		return next.deferred
	})}
}

// ToResult resolves Some to Ok and None to Err(ErrNoValue).
func (o *AsyncOption[T]) ToResult() *AsyncResult[T, error] {
	return FromFuture(future.Then(o.f, func(opt Option[T], err error) (Result[T, error], error) {
		return opt.ToResult(), err
	}))
}
