package async

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/gats/pkg/rop"
	"github.com/ib-77/gats/pkg/rop/fault"
	"github.com/ib-77/gats/pkg/rop/future"
	"github.com/ib-77/gats/pkg/rop/solo"
)

func later[T any](v T) future.Future[T] {
	return future.Go(func() (T, error) {
		time.Sleep(5 * time.Millisecond)
		return v, nil
	})
}

func await[T, E any](t *testing.T, a *rop.AsyncResult[T, E]) rop.Result[T, E] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r, err := a.AwaitContext(ctx)
	require.NoError(t, err)
	return r
}

func TestUpgrade_SyncAsyncSyncChainStaysAsync(t *testing.T) {
	t.Parallel()

	start := solo.Map(rop.Ok[int, error](1), func(x int) int { return x + 1 })
	var chain *rop.AsyncResult[int, error] = Map(
		solo.MapAsync(start, func(x int) future.Future[int] { return later(x + 1) }),
		func(x int) int { return x + 1 })

	require.Equal(t, rop.Ok[int, error](4), await(t, chain))
}

func TestMap_PromiseToMap(t *testing.T) {
	t.Parallel()

	result := Map(rop.AsyncOk[int, error](later(12)), func(x int) int { return x + 1 })

	require.Equal(t, rop.Some(13), result.Ok().Await())
	require.Equal(t, rop.None[error](), result.Err().Await())
	require.Equal(t, 13, result.Await().Value())
}

func TestMapAsync_PromiseToAsyncMapToMap(t *testing.T) {
	t.Parallel()

	start := rop.AsyncOk[int, error](future.Immediate(12))
	result := Map(MapAsync(start, func(x int) future.Future[int] { return later(x + 1) }),
		func(x int) int { return x + 1 })

	require.Equal(t, rop.Some(14), result.Ok().Await())
}

func TestMap_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	result := Map(rop.Lift(rop.Err[int]("whatever")), func(int) int {
		t.Error("map callback must not be invoked on a failure")
		return 0
	})

	r := await(t, result)
	require.True(t, r.IsErr())
	require.Equal(t, "whatever", r.Failure())
}

func TestMapError_AsyncThenSync(t *testing.T) {
	t.Parallel()

	first := solo.MapErrorAsync(rop.Err[int](12), func(e int) future.Future[int] { return later(e + 1) })
	require.Equal(t, rop.Some(13), first.Err().Await())

	second := MapError(first, func(e int) int {
		t.Error("a mapped failure must not be mapped again")
		return e + 1
	})
	require.Equal(t, rop.None[int](), second.Ok().Await())
	require.Equal(t, rop.Some(13), second.Err().Await())
}

func TestMapError_AsyncErrThenAsyncThenSync(t *testing.T) {
	t.Parallel()

	first := MapErrorAsync(rop.AsyncErr[int](later(12)), func(e int) future.Future[int] { return later(e + 1) })
	second := MapError(first, func(e int) int { return e + 1 })

	require.Equal(t, rop.Some(13), second.Err().Await())
	require.True(t, await(t, second).Mapped())
}

func TestMapErrorAsync_SkipsMappedFailure(t *testing.T) {
	t.Parallel()

	first := MapError(rop.AsyncErr[int](later("boom")), func(e string) error { return errors.New("mapped " + e) })
	second := MapErrorAsync(first, func(err error) future.Future[error] {
		t.Error("a mapped failure must not be mapped again")
		return later(err)
	})

	require.EqualError(t, await(t, second).Failure(), "mapped boom")
}

func TestZeroFuture_RejectsInsteadOfCrashing(t *testing.T) {
	t.Parallel()

	var zero future.Future[int]

	attempted := AttemptMapAsync(rop.AsyncOk[int, error](later(1)), func(int) future.Future[int] { return zero })
	require.ErrorIs(t, await(t, attempted).Failure(), future.ErrNilFuture)

	rejected := MapAsync(rop.AsyncOk[int, error](later(1)), func(int) future.Future[int] { return zero })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := rejected.AwaitContext(ctx)

	var rejection *rop.RejectionError
	require.ErrorAs(t, err, &rejection)
	require.ErrorIs(t, err, future.ErrNilFuture)
}

func TestMapError_AppliedOnceAfterSettle(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	mapped := MapError(rop.AsyncErr[int](later("boom")), func(e string) string {
		calls.Add(1)
		return "mapped " + e
	})

	for range 3 {
		require.Equal(t, "mapped boom", await(t, mapped).Failure())
	}
	require.Equal(t, rop.Some("mapped boom"), mapped.Err().Await())
	require.EqualValues(t, 1, calls.Load())
}

func TestMapError_SuccessUntouched(t *testing.T) {
	t.Parallel()

	result := MapError(rop.AsyncOk[int, string](later(5)), func(string) int {
		t.Error("mapError callback must not be invoked on a success")
		return 0
	})
	require.Equal(t, rop.Ok[int, int](5), await(t, result))
}

func TestFlatMap_AsyncOkFlatMapOk(t *testing.T) {
	t.Parallel()

	result := FlatMapAsync(rop.AsyncOk[int, error](later(12)), func(x int) *rop.AsyncResult[int, error] {
		return rop.AsyncOk[int, error](later(x + 1))
	})

	require.Equal(t, rop.Some(13), result.Ok().Await())
	require.Equal(t, rop.None[error](), result.Err().Await())
}

func TestFlatMap_SyncOkAsyncFlatMapError(t *testing.T) {
	t.Parallel()

	issue := errors.New("Error")
	result := solo.FlatMapAsync(rop.Ok[int, error](12), func(int) *rop.AsyncResult[int, error] {
		return rop.Lift(rop.Err[int](issue))
	})

	r := await(t, result)
	require.False(t, r.IsOk())
	require.ErrorIs(t, r.Failure(), issue)
	require.Zero(t, r.Value())
}

func TestFlatMap_ImmediateStepInAsyncChain(t *testing.T) {
	t.Parallel()

	result := FlatMap(rop.AsyncOk[int, string](later(2)), func(x int) rop.Result[string, string] {
		if x > 1 {
			return rop.Ok[string, string](strconv.Itoa(x))
		}
		return rop.Err[string]("too small")
	})
	require.Equal(t, rop.Ok[string, string]("2"), await(t, result))
}

func TestFlatMap_FailureForwardedUntouched(t *testing.T) {
	t.Parallel()

	result := FlatMapAsync(rop.AsyncErr[int](later("original")), func(int) *rop.AsyncResult[int, string] {
		t.Error("flatMap callback must not be invoked on a failure")
		return nil
	})
	require.Equal(t, rop.Err[int]("original"), await(t, result))
}

func TestAttemptMap_CapturesErrorsInAsyncChain(t *testing.T) {
	t.Parallel()

	issue := errors.New("failing promise")
	result := AttemptMapAsync(rop.AsyncOk[int, error](later(2)), func(int) future.Future[int] {
		return future.Rejected[int](issue)
	})
	r := await(t, result)
	require.ErrorIs(t, r.Failure(), issue)

	captured := AttemptMap(rop.AsyncOk[int, error](later(2)), func(int) (int, error) {
		panic("One is not allowed.")
	})
	require.True(t, fault.IsPanic(await(t, captured).Failure()))
}

func TestAttemptMap_ThenMapErrorThenMap(t *testing.T) {
	t.Parallel()

	attempted := solo.AttemptMap(
		solo.Map(rop.Ok[int, error](1), func(x int) int { return x * 100 }),
		func(x int) (int, error) {
			if x == 200 {
				return 0, errors.New("One is not allowed.")
			}
			return x, nil
		})
	withReport := solo.MapErrorAsync(attempted, func(err error) future.Future[error] {
		return later(errors.New("Failed to fetch: " + err.Error()))
	})
	result := Map(withReport, func(x int) string { return strconv.Itoa(x) + " loco" })

	require.Equal(t, rop.Ok[string, error]("100 loco"), await(t, result))
}

func TestRejection_SurfacesAsUncaughtRejection(t *testing.T) {
	t.Parallel()

	issue := errors.New("lost")
	rejected := MapAsync(rop.Lift(rop.Ok[int, error](1)), func(int) future.Future[int] {
		return future.Rejected[int](issue)
	})
	after := Map(rejected, func(x int) int {
		t.Error("steps after a rejection must not run")
		return x
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := after.AwaitContext(ctx)

	var rejection *rop.RejectionError
	require.ErrorAs(t, err, &rejection)
	require.ErrorIs(t, err, issue)
	require.Equal(t, rejected.ID(), rejection.ID)
	require.Panics(t, func() { after.Await() })

	_, err = after.Ok().AwaitContext(ctx)
	require.ErrorIs(t, err, issue)
}

func TestRejection_PanicInMapCallback(t *testing.T) {
	t.Parallel()

	result := Map(rop.AsyncOk[int, error](later(1)), func(int) int {
		panic("defect")
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := result.AwaitContext(ctx)

	var rejection *rop.RejectionError
	require.ErrorAs(t, err, &rejection)
	require.True(t, fault.IsPanic(rejection.Cause))
}

func TestSteps_RunSequentiallyInChainOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var order []string
	record := func(step string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, step)
	}

	result := Map(
		MapAsync(
			Tee(rop.AsyncOk[int, error](later(1)), func(int) { record("tee") }),
			func(x int) future.Future[int] {
				record("async")
				return future.Go(func() (int, error) {
					time.Sleep(10 * time.Millisecond)
					record("settled")
					return x + 1, nil
				})
			}),
		func(x int) int {
			record("map")
			return x * 10
		})

	require.Equal(t, 20, await(t, result).Value())
	require.Equal(t, []string{"tee", "async", "settled", "map"}, order)
}

func TestNeverSettling_StaysPending(t *testing.T) {
	t.Parallel()

	_, pending := future.Create[int]()
	result := Map(rop.AsyncOk[int, error](pending), func(x int) int { return x })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := result.AwaitContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.False(t, result.Settled())
}

func TestFinally_CollapsesSettledResult(t *testing.T) {
	t.Parallel()

	status := Finally(rop.AsyncErr[string](later(errors.New("db"))),
		func(v string) int { return 200 },
		func(error) int { return 500 })

	v, err := status.Await()
	require.NoError(t, err)
	require.Equal(t, 500, v)
}
