// Package maybe holds the operators for rop.Option.
//
// Map and FlatMap skip None. The Async variants return a *rop.AsyncOption
// once the callback hands back a pending computation, and the Attempt
// variants leave the Option world: they return a Result whose failure is
// the captured error, or rop.ErrNoValue when there was nothing to work on.
package maybe
