package task

import (
	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/fault"
	"github.com/ib-77/gats/pkg/rop/future"
)

// New wraps f so that its errors and panics come back as Err(classify(err)).
// Panics reach classify as *fault.PanicError. classify runs at most once per
// call; a panic inside classify itself is not captured.
func New[In, Out, E any](f func(in In) (Out, error), classify func(err error) E) func(in In) rop.Result[Out, E] {
	return func(in In) rop.Result[Out, E] {
		out, err := fault.Catch(func() (Out, error) {
			return f(in)
		})
		if err != nil {
			return rop.Err[Out](classify(err))
		}
		return rop.Ok[Out, E](out)
	}
}

// NewAsync wraps a function that returns a pending computation. A panic while
// starting it and a later rejection both go through classify.
func NewAsync[In, Out, E any](f func(in In) future.Future[Out], classify func(err error) E) func(in In) *rop.AsyncResult[Out, E] {
	return func(in In) *rop.AsyncResult[Out, E] {
		pending, err := fault.Catch(func() (future.Future[Out], error) {
			return f(in), nil
		})
		if err != nil {
			return rop.Lift(rop.Err[Out](classify(err)))
		}
		return rop.FromFuture(future.Then(pending, func(out Out, err error) (rop.Result[Out, E], error) {
			if err != nil {
				return rop.Err[Out](classify(err)), nil
			}
			return rop.Ok[Out, E](out), nil
		}))
	}
}

// Go is New with f run on its own goroutine.
func Go[In, Out, E any](f func(in In) (Out, error), classify func(err error) E) func(in In) *rop.AsyncResult[Out, E] {
	return NewAsync(func(in In) future.Future[Out] {
		return future.Go(func() (Out, error) {
			return f(in)
		})
	}, classify)
}

// Wrap adapts a function that already produces a pending Result. Its
// rejection is a defect and rejects the chain.
func Wrap[In, T, E any](f func(in In) future.Future[rop.Result[T, E]]) func(in In) *rop.AsyncResult[T, E] {
	return func(in In) *rop.AsyncResult[T, E] {
		return rop.FromFuture(f(in))
	}
}
