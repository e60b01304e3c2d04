package rop

import (
	"fmt"
	"reflect"
)

// Outcome holds either the value a computation produced or the error it
// failed with. It is immutable: combinators that transform it return a new
// Outcome, inspection methods return the receiver.
//
// The zero Outcome is a success holding the zero T.
type Outcome[T any] struct {
	value T
	err   error
}

// Of invokes producer once and captures what it yields. A returned error or
// a panic makes the outcome a failure; a panic value that is not an error is
// held as *PanicError. A typed-nil error counts as no error.
func Of[T any](producer Producer[T]) Outcome[T] {
	if producer == nil {
		panic(invalidArgument("of", "producer"))
	}
	return capture(producer)
}

func capture[T any](producer func() (T, error)) (o Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			o = Outcome[T]{err: captured(r)}
		}
	}()

	v, err := producer()
	if !IsNil(err) {
		return Outcome[T]{err: err}
	}
	return Outcome[T]{value: v}
}

func (o Outcome[T]) Result() T {
	return o.value
}

// Err returns the captured error, or nil on success.
func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

func (o Outcome[T]) IsFailure() bool {
	return o.err != nil
}

// MustGet returns the value, panicking with the captured error on failure.
func (o Outcome[T]) MustGet() T {
	if o.err != nil {
		panic(o.err)
	}
	return o.value
}

func (o Outcome[T]) GetOrElse(fallback T) T {
	if o.err != nil {
		return fallback
	}
	return o.value
}

// GetOptional reports the value and whether there is one.
func (o Outcome[T]) GetOptional() (T, bool) {
	if o.err != nil {
		var zero T
		return zero, false
	}
	return o.value, true
}

// GetOrThrow returns the value or the captured error itself.
func (o Outcome[T]) GetOrThrow() (T, error) {
	if o.err != nil {
		var zero T
		return zero, o.err
	}
	return o.value, nil
}

// GetOrThrowRuntime returns the value. On failure it panics: with the
// captured error when that is already a runtime.Error, otherwise with an
// *UncheckedError caused by it.
func (o Outcome[T]) GetOrThrowRuntime() T {
	if o.err == nil {
		return o.value
	}
	if isRuntime(o.err) {
		panic(o.err)
	}
	panic(&UncheckedError{cause: o.err})
}

// GetOrThrowWith returns the value, or newErr with the captured error as its
// cause. If newErr implements CauseSetter it receives the cause and is
// returned as is; otherwise it is returned inside an *EscalationError.
// newErr is not touched on success.
func (o Outcome[T]) GetOrThrowWith(newErr error) (T, error) {
	if o.err == nil {
		return o.value, nil
	}
	if IsNil(newErr) {
		panic(invalidArgument("getOrThrowWith", "error"))
	}

	var zero T
	if s, ok := newErr.(CauseSetter); ok {
		s.SetCause(o.err)
		return zero, newErr
	}
	return zero, &EscalationError{err: newErr, cause: o.err}
}

// Map applies f to a successful value. A failure passes through and f is
// not called. An error or panic from f becomes the new outcome's error.
// A nil f panics whatever the state of o.
func Map[T, R any](o Outcome[T], f Transformer[T, R]) Outcome[R] {
	if f == nil {
		panic(invalidArgument("map", "transformer"))
	}
	if o.err != nil {
		return Outcome[R]{err: o.err}
	}
	return capture(func() (R, error) { return f(o.value) })
}

// Switch is Map for functions that already return an Outcome.
func Switch[T, R any](o Outcome[T], f func(T) Outcome[R]) Outcome[R] {
	if f == nil {
		panic(invalidArgument("switch", "function"))
	}
	if o.err != nil {
		return Outcome[R]{err: o.err}
	}
	return capture(func() (R, error) { return f(o.value).GetOrThrow() })
}

// Custom reduces o with a caller-defined function.
func Custom[T, R any](o Outcome[T], f func(Outcome[T]) R) R {
	if f == nil {
		panic(invalidArgument("custom", "function"))
	}
	return f(o)
}

func (o Outcome[T]) IfPresent(consumer Consumer[T]) Outcome[T] {
	if consumer == nil {
		panic(invalidArgument("ifPresent", "consumer"))
	}
	if o.err == nil {
		consumer(o.value)
	}
	return o
}

func (o Outcome[T]) IfException(consumer Consumer[error]) Outcome[T] {
	if consumer == nil {
		panic(invalidArgument("ifException", "consumer"))
	}
	if o.err != nil {
		consumer(o.err)
	}
	return o
}

// IfExceptionIs calls consumer when the captured error belongs to category.
// Chained calls are evaluated independently, so overlapping categories all
// fire for the same error.
func (o Outcome[T]) IfExceptionIs(category Category, consumer Consumer[error]) Outcome[T] {
	if consumer == nil {
		panic(invalidArgument("ifExceptionIs", "consumer"))
	}
	if category.Matches(o.err) {
		consumer(o.err)
	}
	return o
}

// IfExceptionOf is IfExceptionIs with CategoryOf[E] and a consumer typed for E.
func IfExceptionOf[E error, T any](o Outcome[T], consumer Consumer[E]) Outcome[T] {
	if consumer == nil {
		panic(invalidArgument("ifExceptionOf", "consumer"))
	}
	if e, ok := o.err.(E); ok {
		consumer(e)
	}
	return o
}

// Recover turns a failure back into a value with f. Errors and panics from f
// are captured. A success is returned unchanged.
func (o Outcome[T]) Recover(f func(error) (T, error)) Outcome[T] {
	if f == nil {
		panic(invalidArgument("recover", "function"))
	}
	if o.err == nil {
		return o
	}
	return capture(func() (T, error) { return f(o.err) })
}

func (o Outcome[T]) RecoverWith(f func(error) Outcome[T]) Outcome[T] {
	if f == nil {
		panic(invalidArgument("recoverWith", "function"))
	}
	if o.err == nil {
		return o
	}
	return capture(func() (T, error) { return f(o.err).GetOrThrow() })
}

// Or replaces a failure with Of(producer).
func (o Outcome[T]) Or(producer Producer[T]) Outcome[T] {
	if producer == nil {
		panic(invalidArgument("or", "producer"))
	}
	if o.err == nil {
		return o
	}
	return Of(producer)
}

// Equal reports whether other is an Outcome of the same T in the same state:
// deeply equal values, or equal errors of the same dynamic type. Pointer
// errors are equal only when identical.
func (o Outcome[T]) Equal(other any) bool {
	var that Outcome[T]
	switch x := other.(type) {
	case Outcome[T]:
		that = x
	case *Outcome[T]:
		if x == nil {
			return false
		}
		that = *x
	default:
		return false
	}

	if o.err != nil || that.err != nil {
		return sameError(o.err, that.err)
	}
	return reflect.DeepEqual(o.value, that.value)
}

func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	// Pointer errors compare by identity. Value errors may hold slices or
	// maps behind interface fields, where == panics.
	if ta.Kind() == reflect.Pointer {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// String shows the value on success and the fully qualified type of the
// error on failure. The error message is left out.
func (o Outcome[T]) String() string {
	if o.err != nil {
		return "Exceptional throwable " + ErrorType(o.err)
	}
	return fmt.Sprintf("Exceptional value %v", o.value)
}
