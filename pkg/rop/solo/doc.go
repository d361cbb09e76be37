// Package solo contains the immediate operators on rop.Result. Every function
// here runs its callback on the caller's goroutine before returning.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Map/MapError: transform one channel, leave the other untouched
// - FlatMap: chain a Result-returning step, short-circuiting on failure
// - AttemptMap: call a function (R, error) and capture errors and panics as Err
// - Tee/DoubleTee: side-effect helpers
// - Validate/ValidateAll/FailOnError: turn checks into failures
// - Finally: reduce to a concrete value via success/error handlers
//
// The ...Async variants take a callback that returns a pending computation
// and upgrade the chain to a rop.AsyncResult. From there on the operators of
// package async apply; nothing converts back except Await.
package solo
