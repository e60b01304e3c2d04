package rop

// Producer is a zero-argument computation that yields a value or fails.
// Of invokes it exactly once.
type Producer[T any] func() (T, error)

// Transformer maps a value of type I to a value of type R and may fail.
type Transformer[I, R any] func(I) (R, error)

// Consumer receives a value for its side effect only.
type Consumer[E any] func(E)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the captured error, nil on success
	Err() error
	// IsSuccess returns true if the computation did not fail
	IsSuccess() bool
}

// Causer is implemented by errors that link to the error that caused them.
// It matches the convention used by github.com/pkg/errors.Cause.
type Causer interface {
	Cause() error
}

// CauseSetter is implemented by errors that accept their cause after
// construction. GetOrThrowWith uses it to attach the captured error.
type CauseSetter interface {
	error
	SetCause(cause error)
}

var _ WithError[int] = Outcome[int]{}
