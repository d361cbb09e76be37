package rop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/gats/pkg/rop/core"
	"github.com/ib-77/gats/pkg/rop/future"
)

func TestLift_IsSettledImmediately(t *testing.T) {
	t.Parallel()
	a := Lift(Ok[int, error](3))

	require.True(t, a.Settled())
	require.Equal(t, Ok[int, error](3), a.Await())
	require.Equal(t, Some(3), a.Ok().Await())
	require.Equal(t, None[error](), a.Err().Await())
	require.NotZero(t, a.ID())
	require.False(t, a.CreatedAt().IsZero())
}

func TestAsyncOk_ResolvesValueProjection(t *testing.T) {
	t.Parallel()
	promise, f := future.Create[int]()
	a := AsyncOk[int, string](f)
	require.False(t, a.Settled())

	promise.Fulfill(12)

	require.Equal(t, Some(12), a.Ok().Await())
	require.Equal(t, None[string](), a.Err().Await())
	ok, err := a.IsOk().Await()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAsyncErr_ResolvesErrorProjection(t *testing.T) {
	t.Parallel()
	a := AsyncErr[int](future.Immediate("bad"))

	require.Equal(t, Err[int]("bad"), a.Await())
	require.Equal(t, Some("bad"), a.Err().Await())
	require.Equal(t, None[int](), a.Ok().Await())
}

func TestAsyncResult_AwaitIsRepeatable(t *testing.T) {
	t.Parallel()
	a := AsyncOk[int, error](future.Go(func() (int, error) { return 5, nil }))

	first := a.Await()
	second := a.Await()
	require.Equal(t, first, second)
	require.True(t, a.Settled())
}

func TestContinue_AdoptsReturnedAsyncResult(t *testing.T) {
	t.Parallel()
	a := Continue(Lift(Ok[int, error](2)), func(r Result[int, error]) *AsyncResult[string, error] {
		return AsyncOk[string, error](future.Immediate(r.String()))
	})
	require.Equal(t, Ok[string, error]("Ok(2)"), a.Await())
}

func TestContinue_NilStepRejects(t *testing.T) {
	t.Parallel()
	a := Continue(Lift(Ok[int, error](2)), func(Result[int, error]) *AsyncResult[int, error] {
		return nil
	})

	_, err := a.AwaitContext(context.Background())
	require.ErrorIs(t, err, errNilStep)
}

func TestFromFuture_RejectionBecomesRejectionError(t *testing.T) {
	t.Parallel()
	issue := errors.New("rejected")
	a := FromFuture(future.Rejected[Result[int, error]](issue))

	_, err := a.AwaitContext(context.Background())
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, a.ID(), rejection.ID)
	require.ErrorIs(t, err, issue)

	require.PanicsWithError(t, err.Error(), func() { a.Await() })
}

func TestAsyncOption_ToResult(t *testing.T) {
	t.Parallel()
	some := FromFutureOption(future.Immediate(Some("x"))).ToResult()
	require.Equal(t, Ok[string, error]("x"), some.Await())

	none := LiftOption(None[string]()).ToResult().Await()
	require.ErrorIs(t, none.Failure(), ErrNoValue)
}

func TestContinueOption(t *testing.T) {
	t.Parallel()
	o := ContinueOption(LiftOption(Some(2)), func(opt Option[int]) *AsyncOption[int] {
		v, _ := opt.Get()
		return LiftOption(Some(v * 2))
	})
	require.Equal(t, Some(4), o.Await())
}

func TestWait_AllSettled(t *testing.T) {
	t.Parallel()
	a := Lift(Ok[int, error](1))
	o := LiftOption(Some(1))

	require.NoError(t, Wait(context.Background(), a, o))

	_, pending := future.Create[Option[int]]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, Wait(ctx, a, FromFutureOption(pending)), context.DeadlineExceeded)
}

func TestAwaitContext_HonoursAwaitOptions(t *testing.T) {
	t.Parallel()
	_, pending := future.Create[Result[int, error]]()
	a := FromFuture(pending)

	ctx := core.WithAwaitOptions(context.Background(), 10*time.Millisecond)
	_, err := a.AwaitContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRejection_IsLoggedOnce(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(observed))
	defer SetLogger(nil)

	issue := errors.New("rejected")
	first := FromFuture(future.Rejected[Result[int, error]](issue))
	second := Continue(first, func(r Result[int, error]) *AsyncResult[int, error] {
		return Lift(r)
	})

	_, err := second.AwaitContext(context.Background())
	require.ErrorIs(t, err, issue)

	rejections := logs.FilterMessage("uncaught rejection").All()
	require.Len(t, rejections, 1)
	require.Equal(t, first.ID().String(), rejections[0].ContextMap()["id"])
	require.NotZero(t, logs.FilterMessageSnippet("created deferred value").Len())
}

func TestAwaitContext_LogsAbandonedWaitToContextLogger(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	_, pending := future.Create[Result[int, error]]()
	a := FromFuture(pending)

	ctx := core.WithLogger(context.Background(), zap.New(observed))
	ctx, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()

	_, err := a.AwaitContext(ctx)
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("await abandoned").Len())
}
