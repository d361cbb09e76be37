// Package core holds the context-carried options shared by rop packages: how
// long AwaitContext may block and which zap logger it reports to. It does not
// depend on rop itself, so every other package can import it.
package core
