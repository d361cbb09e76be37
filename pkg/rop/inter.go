package rop

import "context"

// Settler is implemented by values that start Pending and settle once.
type Settler interface {
	// Done is closed once the value settles
	Done() <-chan struct{}
	// Settled reports whether Done is closed
	Settled() bool
}

// Awaitable extends Settler with a bounded wait for the settled value.
type Awaitable[R any] interface {
	Settler
	// AwaitContext blocks until the value settles or ctx ends
	AwaitContext(ctx context.Context) (R, error)
}

// Resolved is implemented by Result: an immediate value with an Ok/Err
// discriminant and both channels projected as Options.
type Resolved[T, E any] interface {
	IsOk() bool
	Ok() Option[T]
	Err() Option[E]
}

var (
	_ Awaitable[Result[int, error]] = (*AsyncResult[int, error])(nil)
	_ Awaitable[Option[int]]        = (*AsyncOption[int])(nil)
	_ Resolved[int, error]          = Result[int, error]{}
)

// Wait blocks until every value settles or ctx ends.
func Wait(ctx context.Context, values ...Settler) error {
	for _, v := range values {
		select {
		case <-v.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
