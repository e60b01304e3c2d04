// Package ropzap logs rop.Outcome values with go.uber.org/zap.
//
// The logger and the report options travel in the context, set with
// WithLogger and WithReportOptions.
package ropzap
