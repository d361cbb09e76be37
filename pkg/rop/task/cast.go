package task

import (
	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/async"
	"github.com/ib-77/gats/pkg/rop/solo"
)

// CastErr re-tags the failure of f with q. Successes pass through untouched.
func CastErr[In, T, E, E2 any](f func(in In) rop.Result[T, E], q func(err E) E2) func(in In) rop.Result[T, E2] {
	return func(in In) rop.Result[T, E2] {
		return solo.MapError(f(in), q)
	}
}

func CastErrAsync[In, T, E, E2 any](f func(in In) *rop.AsyncResult[T, E], q func(err E) E2) func(in In) *rop.AsyncResult[T, E2] {
	return func(in In) *rop.AsyncResult[T, E2] {
		return async.MapError(f(in), q)
	}
}
