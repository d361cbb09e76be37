// Package chain provides a fluent wrapper around Result[T, E]
// for building Railway-Oriented chains that may go async halfway.
//
// A Chain starts immediate and runs every step on the spot through the solo
// operators. The first step that returns a pending computation (MapAsync,
// MapErrorAsync, FlatMapAsync, ThenAsync) turns it into an async chain, and
// every chain derived from it stays async and runs through the async
// operators. Callbacks receive the context the chain was started with.
//
// Key operations:
// - Start/StartAsync/FromValue/FromOption: begin a chain
// - Then/ThenAsync: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - MapError: re-tag the failure (E -> E2)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
