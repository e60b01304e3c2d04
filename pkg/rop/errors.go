package rop

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is the sentinel behind every contract violation, such as
// a nil transformer. Contract violations panic immediately and are never
// captured as the outcome's error.
var ErrInvalidArgument = errors.New("rop: invalid argument")

func invalidArgument(op, what string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s is nil", op, what)
}

// PanicError holds a non-error value recovered from a panicking producer or
// transformer.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("rop: panic: %v", e.Value)
}

// RuntimeError marks PanicError as a runtime.Error.
func (e *PanicError) RuntimeError() {}

// UncheckedError is the envelope GetOrThrowRuntime panics with when the
// captured error is not already a runtime.Error.
type UncheckedError struct {
	cause error
}

func (e *UncheckedError) Error() string {
	return "rop: unchecked: " + e.cause.Error()
}

func (e *UncheckedError) RuntimeError() {}

func (e *UncheckedError) Cause() error { return e.cause }

func (e *UncheckedError) Unwrap() error { return e.cause }

// EscalationError carries a caller-supplied error together with the captured
// error that caused it. It reads as the caller's error: Error and Unwrap
// both delegate to it, so errors.As finds the caller's type. The captured
// error is reachable only through Cause.
type EscalationError struct {
	err   error
	cause error
}

func (e *EscalationError) Error() string { return e.err.Error() }

func (e *EscalationError) Cause() error { return e.cause }

func (e *EscalationError) Unwrap() error { return e.err }

// Format supports %+v, printing the caused-by link.
func (e *EscalationError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v\ncaused by: %+v", e.err, e.cause)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func captured(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

func isRuntime(err error) bool {
	_, ok := err.(runtime.Error)
	return ok
}

var (
	_ runtime.Error = (*PanicError)(nil)
	_ runtime.Error = (*UncheckedError)(nil)
	_ Causer        = (*UncheckedError)(nil)
	_ Causer        = (*EscalationError)(nil)
)
