// Package future provides the pending computation that backs every deferred
// value in rop. A Future starts Pending and settles exactly once, either
// fulfilled with a value or rejected with an error. Once settled it can be
// awaited any number of times, from any goroutine.
//
// The producer side usually looks like this:
//
//	promise, f := future.Create[T]()
//	go func() {
//		promise.Settle(someOperation())
//	}()
//	return f
//
// Go wraps that pattern and also turns a panic in the operation into a
// rejection. Immediate and Rejected build futures that are already settled.
package future

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/gats/pkg/rop/fault"
)

// ErrNilFuture rejects a zero Future, one not obtained from this package.
var ErrNilFuture = errors.New("future: zero Future was never created")

var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

type state[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func (s *state[T]) settle(value T, err error) bool {
	if s == nil {
		return false
	}
	settled := false
	s.once.Do(func() {
		s.value = value
		s.err = err
		settled = true
		close(s.done)
	})
	return settled
}

// Promise is the handle used to settle a Future.
type Promise[T any] struct {
	s *state[T]
}

// Future is a placeholder for a value that becomes available later.
type Future[T any] struct {
	s *state[T]
}

// Create returns a linked Promise and Future.
func Create[T any]() (Promise[T], Future[T]) {
	s := &state[T]{done: make(chan struct{})}
	return Promise[T]{s: s}, Future[T]{s: s}
}

// Immediate returns a Future already fulfilled with value.
func Immediate[T any](value T) Future[T] {
	p, f := Create[T]()
	p.Fulfill(value)
	return f
}

// Rejected returns a Future already rejected with err.
func Rejected[T any](err error) Future[T] {
	p, f := Create[T]()
	p.Reject(err)
	return f
}

// Go runs fn on its own goroutine. A returned error or a panic rejects the
// Future.
func Go[T any](fn func() (T, error)) Future[T] {
	p, f := Create[T]()
	go func() {
		p.Settle(fault.Catch(fn))
	}()
	return f
}

// Fulfill settles the Future with value. It reports false if the Future was
// already settled, in which case nothing changes.
func (p Promise[T]) Fulfill(value T) bool {
	return p.s.settle(value, nil)
}

// Reject settles the Future with err.
func (p Promise[T]) Reject(err error) bool {
	var zero T
	return p.s.settle(zero, err)
}

// Settle fulfills with value when err is nil and rejects otherwise.
func (p Promise[T]) Settle(value T, err error) bool {
	if err != nil {
		return p.Reject(err)
	}
	return p.Fulfill(value)
}

// Forward settles the Promise with whatever f settles to.
func (p Promise[T]) Forward(f Future[T]) {
	go func() {
		p.Settle(f.Await())
	}()
}

// Done is closed once the Future settles. A zero Future counts as rejected
// with ErrNilFuture.
func (f Future[T]) Done() <-chan struct{} {
	if f.s == nil {
		return closed
	}
	return f.s.done
}

// Settled reports whether the Future has left the Pending state.
func (f Future[T]) Settled() bool {
	select {
	case <-f.Done():
		return true
	default:
		return false
	}
}

// Await blocks until the Future settles. A Future that never settles blocks
// forever; use AwaitContext to bound the wait.
func (f Future[T]) Await() (T, error) {
	if f.s == nil {
		var zero T
		return zero, ErrNilFuture
	}
	<-f.s.done
	return f.s.value, f.s.err
}

// AwaitContext is Await bounded by ctx. When ctx ends first its error is
// returned and the Future keeps running.
func (f Future[T]) AwaitContext(ctx context.Context) (T, error) {
	if f.s == nil {
		var zero T
		return zero, ErrNilFuture
	}
	select {
	case <-f.s.done:
		return f.s.value, f.s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then returns a Future settled by transform once f settles. transform sees
// both outcomes of f and runs on its own goroutine; a panic inside it rejects
// the returned Future.
func Then[A, B any](f Future[A], transform func(A, error) (B, error)) Future[B] {
	p, next := Create[B]()
	go func() {
		a, err := f.Await()
		p.Settle(fault.Catch(func() (B, error) {
			return transform(a, err)
		}))
	}()
	return next
}
