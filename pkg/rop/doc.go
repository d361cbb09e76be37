// Package rop holds the value types for railway-oriented code: Option,
// Result and their deferred counterparts AsyncOption and AsyncResult.
//
// Results are immediate and are transformed with package solo. As soon as a
// step hands back a pending computation the chain becomes an AsyncResult,
// which is transformed with package async and never turns back into a Result
// on its own; Await and AwaitContext are the only way out. Package maybe
// covers Option, package task converts error-returning and panicking code
// into Results, and package chain wraps all of it behind a fluent type.
//
// Every deferred value carries a uuid that shows up in debug logs and in
// RejectionError. Install a zap logger with SetLogger to see them.
package rop
