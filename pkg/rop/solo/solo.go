package solo

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ib-77/exceptional/pkg/rop"
)

func Try[T any](ctx context.Context, producer func(ctx context.Context) (T, error)) rop.Outcome[T] {
	mustHave(producer != nil, "try", "producer")
	return rop.Of(func() (T, error) { return producer(ctx) })
}

func Validate[T any](ctx context.Context, input rop.Outcome[T],
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Outcome[T] {
	mustHave(validate != nil, "validate", "validator")

	return rop.Map(input, func(in T) (T, error) {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return in, errors.New(errMsg)
		}
		return in, nil
	})
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) rop.Outcome[Out]) rop.Outcome[Out] {
	mustHave(onSuccess != nil, "switch", "function")

	return rop.Switch(input, func(r In) rop.Outcome[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) (Out, error)) rop.Outcome[Out] {
	mustHave(onSuccess != nil, "map", "transformer")

	return rop.Map(input, func(r In) (Out, error) {
		return onSuccess(ctx, r)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Outcome[T],
	maybeErr func(ctx context.Context, in T) error) rop.Outcome[T] {
	mustHave(maybeErr != nil, "failOnError", "function")

	return rop.Map(input, func(in T) (T, error) {
		return in, maybeErr(ctx, in)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Outcome[T],
	onSuccess func(ctx context.Context, r T)) rop.Outcome[T] {
	mustHave(onSuccess != nil, "tee", "consumer")

	return input.IfPresent(func(r T) { onSuccess(ctx, r) })
}

func DoubleTee[T any](ctx context.Context, input rop.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Outcome[T] {
	mustHave(onSuccess != nil, "doubleTee", "success consumer")
	mustHave(onError != nil, "doubleTee", "error consumer")

	return input.
		IfPresent(func(r T) { onSuccess(ctx, r) }).
		IfException(func(err error) { onError(ctx, err) })
}

func Finally[In, Out any](ctx context.Context, input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {
	mustHave(onSuccess != nil, "finally", "success handler")
	mustHave(onError != nil, "finally", "error handler")

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Outcome[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Outcome[T]) rop.Outcome[T]) rop.Outcome[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Outcome[T]) rop.Outcome[T] {

			if current.IsFailure() {
				err = multierr.Append(err, current.Err())
			}

			if err == nil {
				return current
			}

			return failWith[T](err)
		},
		inputsF...,
	)
}

func TeeIf[T any](ctx context.Context,
	input rop.Outcome[T],
	condition func(ctx context.Context, r rop.Outcome[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Outcome[T])) rop.Outcome[T] {
	mustHave(condition != nil, "teeIf", "condition")
	mustHave(onSuccessAndCondition != nil, "teeIf", "consumer")

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

// DoubleMap maps a success with onSuccess. A failure is reported to onError
// and passed through unchanged.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error)) rop.Outcome[Out] {
	mustHave(onSuccess != nil, "doubleMap", "success handler")
	mustHave(onError != nil, "doubleMap", "error handler")

	input.IfException(func(err error) { onError(ctx, err) })

	return rop.Map(input, func(r In) (Out, error) {
		return onSuccess(ctx, r), nil
	})
}

// Join feeds input through inputsF in order, passing every step result
// through concat. With breakOnError it stops at the first failure. It also
// stops, returning what it has, once ctx is done.
func Join[T any](ctx context.Context,
	input rop.Outcome[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Outcome[T]) rop.Outcome[T],
	inputsF ...func(ctx context.Context, in rop.Outcome[T]) rop.Outcome[T]) rop.Outcome[T] {
	mustHave(concat != nil, "join", "concat")

	if len(inputsF) == 0 || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}

func failWith[T any](err error) rop.Outcome[T] {
	return rop.Of(func() (T, error) {
		var zero T
		return zero, err
	})
}

func mustHave(ok bool, op, what string) {
	if !ok {
		panic(errors.Wrapf(rop.ErrInvalidArgument, "solo.%s: %s is nil", op, what))
	}
}
