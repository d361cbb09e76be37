package chain

import (
	"context"

	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/async"
	"github.com/ib-77/gats/pkg/rop/future"
	"github.com/ib-77/gats/pkg/rop/solo"
)

// Chain wraps a rop.Result or a *rop.AsyncResult with context to enable
// fluent chaining. Exactly one of result and pending is in use: pending is
// set from the first step that went async on.
type Chain[T, E any] struct {
	ctx     context.Context
	result  rop.Result[T, E]
	pending *rop.AsyncResult[T, E]
}

func immediate[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{ctx: ctx, result: result}
}

func deferred[T, E any](ctx context.Context, pending *rop.AsyncResult[T, E]) *Chain[T, E] {
	return &Chain[T, E]{ctx: ctx, pending: pending}
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return immediate(ctx, result)
}

// StartAsync creates a chain that is async from the beginning
func StartAsync[T, E any](ctx context.Context, pending *rop.AsyncResult[T, E]) *Chain[T, E] {
	return deferred(ctx, pending)
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T, error] {
	return immediate(ctx, rop.Ok[T, error](value))
}

// FromOption creates a chain that fails with rop.ErrNoValue on None
func FromOption[T any](ctx context.Context, option rop.Option[T]) *Chain[T, error] {
	return immediate(ctx, option.ToResult())
}

// IsAsync reports whether a step of the chain produced a pending computation.
// Every chain derived from an async chain is async too.
func (c *Chain[T, E]) IsAsync() bool {
	return c.pending != nil
}

// Result returns the underlying rop.Result, waiting for it when the chain is
// async. A rejected chain panics with the *rop.RejectionError; use Await to
// get it as an error.
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	if c.IsAsync() {
		return c.pending.Await()
	}
	return c.result
}

// Await returns the settled result, or an error when ctx ends first or the
// chain was rejected.
func (c *Chain[T, E]) Await(ctx context.Context) (rop.Result[T, E], error) {
	if c.IsAsync() {
		return c.pending.AwaitContext(ctx)
	}
	return c.result, nil
}

// Async returns the chain as a *rop.AsyncResult, lifting an immediate result.
func (c *Chain[T, E]) Async() *rop.AsyncResult[T, E] {
	if c.IsAsync() {
		return c.pending
	}
	return rop.Lift(c.result)
}

func (c *Chain[T, E]) Map(onSuccess func(context.Context, T) T) *Chain[T, E] {
	return Map(c, onSuccess)
}

// MapAsync transforms the value with a step that returns a pending
// computation. The returned chain is async.
func (c *Chain[T, E]) MapAsync(onSuccess func(context.Context, T) future.Future[T]) *Chain[T, E] {
	f := func(v T) future.Future[T] { return onSuccess(c.ctx, v) }
	if c.IsAsync() {
		return deferred(c.ctx, async.MapAsync(c.pending, f))
	}
	return deferred(c.ctx, solo.MapAsync(c.result, f))
}

func (c *Chain[T, E]) MapError(onError func(context.Context, E) E) *Chain[T, E] {
	return MapError(c, onError)
}

func (c *Chain[T, E]) MapErrorAsync(onError func(context.Context, E) future.Future[E]) *Chain[T, E] {
	f := func(err E) future.Future[E] { return onError(c.ctx, err) }
	if c.IsAsync() {
		return deferred(c.ctx, async.MapErrorAsync(c.pending, f))
	}
	return deferred(c.ctx, solo.MapErrorAsync(c.result, f))
}

func (c *Chain[T, E]) FlatMap(onSuccess func(context.Context, T) rop.Result[T, E]) *Chain[T, E] {
	return Then(c, onSuccess)
}

func (c *Chain[T, E]) FlatMapAsync(onSuccess func(context.Context, T) *rop.AsyncResult[T, E]) *Chain[T, E] {
	return ThenAsync(c, onSuccess)
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	f := func(v T) { onSuccess(c.ctx, v) }
	if c.IsAsync() {
		return deferred(c.ctx, async.Tee(c.pending, f))
	}
	return immediate(c.ctx, solo.Tee(c.result, f))
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	f := func(v T) U { return onSuccess(c.ctx, v) }
	if c.IsAsync() {
		return deferred(c.ctx, async.Map(c.pending, f))
	}
	return immediate(c.ctx, solo.Map(c.result, f))
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	f := func(v T) rop.Result[U, E] { return onSuccess(c.ctx, v) }
	if c.IsAsync() {
		return deferred(c.ctx, async.FlatMap(c.pending, f))
	}
	return immediate(c.ctx, solo.FlatMap(c.result, f))
}

// ThenAsync chains a function that returns *rop.AsyncResult[U, E]. The
// returned chain is async.
func ThenAsync[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) *rop.AsyncResult[U, E]) *Chain[U, E] {
	f := func(v T) *rop.AsyncResult[U, E] { return onSuccess(c.ctx, v) }
	if c.IsAsync() {
		return deferred(c.ctx, async.FlatMapAsync(c.pending, f))
	}
	return deferred(c.ctx, solo.FlatMapAsync(c.result, f))
}

// ThenTry chains a function that returns (U, error). Its error or panic
// becomes the failure of the chain.
func ThenTry[T, U, E any](c *Chain[T, E], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	f := func(v T) (U, error) { return tryOnSuccess(c.ctx, v) }
	if c.IsAsync() {
		return deferred(c.ctx, async.AttemptMap(c.pending, f))
	}
	return immediate(c.ctx, solo.AttemptMap(c.result, f))
}

// MapError converts the failure into another error type
func MapError[T, E, E2 any](c *Chain[T, E], onError func(context.Context, E) E2) *Chain[T, E2] {
	f := func(err E) E2 { return onError(c.ctx, err) }
	if c.IsAsync() {
		return deferred(c.ctx, async.MapError(c.pending, f))
	}
	return immediate(c.ctx, solo.MapError(c.result, f))
}

// ValidateAll runs validators against the value, see solo.ValidateAll
func ValidateAll[T any](c *Chain[T, error], breakOnError bool, validators ...func(context.Context, T) error) *Chain[T, error] {
	checks := make([]func(T) error, 0, len(validators))
	for _, validate := range validators {
		checks = append(checks, func(v T) error { return validate(c.ctx, v) })
	}
	if c.IsAsync() {
		return deferred(c.ctx, rop.Continue(c.pending, func(r rop.Result[T, error]) *rop.AsyncResult[T, error] {
			return rop.Lift(solo.ValidateAll(r, breakOnError, checks...))
		}))
	}
	return immediate(c.ctx, solo.ValidateAll(c.result, breakOnError, checks...))
}

// Finally collapses the chain into a final value. An async chain is awaited
// with the chain's context; onCancel receives the error when that context
// ends first or the chain was rejected.
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U, onCancel func(context.Context, error) U) U {
	result, err := c.Await(c.ctx)
	if err != nil {
		return onCancel(c.ctx, err)
	}
	return solo.Finally(result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err E) U { return onFailure(c.ctx, err) })
}
