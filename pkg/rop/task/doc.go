// Package task is the boundary where code that returns errors or panics
// enters the Result algebra.
//
// A task wraps a function together with a classifier. Whatever goes wrong
// inside the function, synchronously or in the pending computation it
// returned, is passed to the classifier once and ends up as Err. CastErr and
// CastErrAsync adapt the failure type of an existing Result-returning
// function to the taxonomy of the calling layer.
package task
