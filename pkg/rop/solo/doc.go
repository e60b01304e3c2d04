// Package solo contains context-carrying helpers over rop.Outcome[T]. Each
// one threads a context.Context into its callbacks and otherwise behaves like
// the matching rop combinator: failures short-circuit, and errors or panics
// raised by callbacks are captured.
//
// Highlights:
// - Try: run a context-aware producer through rop.Of
// - Validate/FailOnError: turn an invalid value into a failure
// - ValidateAll/Join: run several steps over one outcome, collecting failures
// - Switch/Map/DoubleMap: move from Outcome[In] to Outcome[Out]
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
