// Package rop provides Outcome[T], a single-value container that runs a
// fallible computation once and keeps either its value or its error.
//
// Highlights:
// - Of: run a Producer and capture its value, error or panic
// - MustGet/GetOrElse/GetOptional/GetOrThrow: read the value under different failure policies
// - GetOrThrowRuntime/GetOrThrowWith: escalate a failure, keeping the captured error as the cause
// - Map/Switch: transform a successful value; failures pass through untouched
// - IfException/IfExceptionIs/IfExceptionOf: inspect a failure, optionally by Category
// - Recover/RecoverWith/Or: turn a failure back into a value
// - Equal/Hash/Fingerprint/String: value semantics
//
// Context-aware helpers live in package solo, zap logging in package ropzap.
package rop
