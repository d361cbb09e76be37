package maybe

import (
	"reflect"

	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/fault"
	"github.com/ib-77/gats/pkg/rop/future"
)

// FromPtr returns None for a nil pointer and Some of the pointed-to value
// otherwise.
func FromPtr[T any](p *T) rop.Option[T] {
	if p == nil {
		return rop.None[T]()
	}
	return rop.Some(*p)
}

// FromZero returns None for the zero value of T. Use it at boundaries where
// the zero value means "absent", such as an unset id.
func FromZero[T any](v T) rop.Option[T] {
	if reflect.ValueOf(&v).Elem().IsZero() {
		return rop.None[T]()
	}
	return rop.Some(v)
}

// FromOk drops the failure of a Result.
func FromOk[T, E any](r rop.Result[T, E]) rop.Option[T] {
	return r.Ok()
}

// ToResult resolves Some to Ok and None to Err(rop.ErrNoValue).
func ToResult[T any](o rop.Option[T]) rop.Result[T, error] {
	return o.ToResult()
}

func Map[T, R any](o rop.Option[T], f func(T) R) rop.Option[R] {
	v, ok := o.Get()
	if !ok {
		return rop.None[R]()
	}
	return rop.Some(f(v))
}

func FlatMap[T, R any](o rop.Option[T], f func(T) rop.Option[R]) rop.Option[R] {
	v, ok := o.Get()
	if !ok {
		return rop.None[R]()
	}
	return f(v)
}

// Filter keeps the value only when keep reports true.
func Filter[T any](o rop.Option[T], keep func(T) bool) rop.Option[T] {
	v, ok := o.Get()
	if !ok || !keep(v) {
		return rop.None[T]()
	}
	return o
}

// AttemptMap runs f on the value and captures its error or panic as Err.
// None becomes Err(rop.ErrNoValue) and f is not invoked.
func AttemptMap[T, R any](o rop.Option[T], f func(T) (R, error)) rop.Result[R, error] {
	v, ok := o.Get()
	if !ok {
		return rop.Err[R](rop.ErrNoValue)
	}
	return rop.FromPair(fault.Catch(func() (R, error) {
		return f(v)
	}))
}

// MapAsync is Map with a callback that returns a pending computation. A
// rejection of that future is not a None: it rejects the returned value.
func MapAsync[T, R any](o rop.Option[T], f func(T) future.Future[R]) *rop.AsyncOption[R] {
	v, ok := o.Get()
	if !ok {
		return rop.LiftOption(rop.None[R]())
	}
	return rop.FromFutureOption(future.Then(f(v), func(out R, err error) (rop.Option[R], error) {
		if err != nil {
			return rop.None[R](), err
		}
		return rop.Some(out), nil
	}))
}

func FlatMapAsync[T, R any](o rop.Option[T], f func(T) *rop.AsyncOption[R]) *rop.AsyncOption[R] {
	v, ok := o.Get()
	if !ok {
		return rop.LiftOption(rop.None[R]())
	}
	return f(v)
}

// AttemptMapAsync is AttemptMap with a callback that returns a pending
// computation. A rejection becomes Err.
func AttemptMapAsync[T, R any](o rop.Option[T], f func(T) future.Future[R]) *rop.AsyncResult[R, error] {
	v, ok := o.Get()
	if !ok {
		return rop.Lift(rop.Err[R](rop.ErrNoValue))
	}

	pending, err := fault.Catch(func() (future.Future[R], error) {
		return f(v), nil
	})
	if err != nil {
		return rop.Lift(rop.Err[R](err))
	}
	return rop.FromFuture(future.Then(pending, func(out R, err error) (rop.Result[R, error], error) {
		return rop.FromPair(out, err), nil
	}))
}
