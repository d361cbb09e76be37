// Package async provides the operators of package solo for *rop.AsyncResult.
// Every operator returns another *rop.AsyncResult, so a chain that went async
// stays async; rop.Lift is the way in and Await the way out.
//
// Callbacks never run on the caller's goroutine. Each one is scheduled after
// the previous step of the same chain has settled, so the steps of one chain
// run strictly one after another.
//
// Failures short-circuit exactly as in solo. A panic in a Map, MapError or
// FlatMap callback, or a rejected future returned by a MapAsync or
// MapErrorAsync callback, rejects the chain instead: later steps are skipped
// and AwaitContext reports a *rop.RejectionError. Route throwing code through
// AttemptMap or a task to get a typed failure.
package async
