package rop

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/gats/pkg/rop/core"
	"github.com/ib-77/gats/pkg/rop/fault"
	"github.com/ib-77/gats/pkg/rop/future"
)

var errNilStep = errors.New("continuation returned a nil deferred value")

// deferred is the state shared by AsyncResult and AsyncOption: a future that
// settles once, plus the id used to trace it.
type deferred[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	f         future.Future[R]
}

func newDeferred[R any](f future.Future[R]) *deferred[R] {
	d := &deferred[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		f:         f,
	}
	Logger().Sugar().Debugf("created deferred value: id: %v", d.id)
	return d
}

// settle resolves p. Any error that is not already a RejectionError is a new
// uncaught rejection and is logged against this value's id.
func (d *deferred[R]) settle(p future.Promise[R], value R, err error) {
	if err != nil {
		var rejection *RejectionError
		if !errors.As(err, &rejection) {
			Logger().Error("uncaught rejection",
				zap.String("id", d.id.String()),
				zap.Error(err),
				zap.Bool("panic", fault.IsPanic(err)))
			err = &RejectionError{ID: d.id, Cause: err}
		}
		p.Reject(err)
		return
	}
	p.Fulfill(value)
	Logger().Sugar().Debugf("settled deferred value: id: %v, elapsed: %v", d.id, time.Since(d.createdAt))
}

func fromFuture[R any](src future.Future[R]) *deferred[R] {
	p, f := future.Create[R]()
	d := newDeferred(f)
	if src.Settled() {
		value, err := src.Await()
		d.settle(p, value, err)
		return d
	}
	go func() {
		value, err := src.Await()
		d.settle(p, value, err)
	}()
	return d
}

// continueDeferred runs step after src settles and adopts the deferred value
// step returns. A rejected src skips step.
func continueDeferred[A, B any](src *deferred[A], step func(A) *deferred[B]) *deferred[B] {
	p, f := future.Create[B]()
	next := newDeferred(f)
	go func() {
		var zero B
		a, err := src.f.Await()
		if err != nil {
			next.settle(p, zero, err)
			return
		}
		inner, err := fault.Catch(func() (*deferred[B], error) {
			return step(a), nil
		})
		if err == nil && inner == nil {
			err = errNilStep
		}
		if err != nil {
			next.settle(p, zero, err)
			return
		}
		b, err := inner.f.Await()
		next.settle(p, b, err)
	}()
	return next
}

// ID identifies the deferred value in logs and in RejectionError.
func (d *deferred[R]) ID() uuid.UUID {
	return d.id
}

func (d *deferred[R]) CreatedAt() time.Time {
	return d.createdAt
}

// Future exposes the underlying pending computation. A rejected chain rejects
// it with a *RejectionError.
func (d *deferred[R]) Future() future.Future[R] {
	return d.f
}

// Done is closed once the value settles.
func (d *deferred[R]) Done() <-chan struct{} {
	return d.f.Done()
}

func (d *deferred[R]) Settled() bool {
	return d.f.Settled()
}

// Await blocks until the value settles and returns it. If the chain was
// rejected, Await panics with the *RejectionError; use AwaitContext to get it
// as an error instead.
func (d *deferred[R]) Await() R {
	value, err := d.f.Await()
	if err != nil {
		panic(err)
	}
	return value
}

// AwaitContext blocks until the value settles or ctx ends. The wait is also
// bounded by the timeout set with core.WithAwaitOptions.
func (d *deferred[R]) AwaitContext(ctx context.Context) (R, error) {
	if timeout := core.GetAwaitTimeout(ctx, 0); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	value, err := d.f.AwaitContext(ctx)
	if err != nil && !d.f.Settled() {
		core.LoggerFrom(ctx, Logger()).Debug("await abandoned",
			zap.String("id", d.id.String()),
			zap.Error(err))
	}
	return value, err
}
