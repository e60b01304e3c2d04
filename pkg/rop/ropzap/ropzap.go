package ropzap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/exceptional/pkg/rop"
)

// Field logs o as a nested object: its state, then the value or the error
// with its type. It never adds the fingerprint; use FieldContext for that.
func Field[T any](key string, o rop.Outcome[T]) zap.Field {
	return zap.Object(key, outcomeMarshaler[T]{o: o})
}

// FieldContext is Field with the fingerprint added when WithReportOptions
// enabled it on ctx.
func FieldContext[T any](ctx context.Context, key string, o rop.Outcome[T]) zap.Field {
	return zap.Object(key, outcomeMarshaler[T]{
		o:           o,
		fingerprint: IsFingerprintEnabled(ctx, false),
	})
}

type outcomeMarshaler[T any] struct {
	o           rop.Outcome[T]
	fingerprint bool
}

func (m outcomeMarshaler[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := m.o.Err(); err != nil {
		enc.AddString("state", "failure")
		enc.AddString("error_type", rop.ErrorType(err))
		enc.AddString("error", err.Error())
	} else {
		enc.AddString("state", "success")
		if err := enc.AddReflected("value", m.o.Result()); err != nil {
			return err
		}
	}

	if m.fingerprint {
		enc.AddString("fingerprint", m.o.Fingerprint().String())
	}
	return nil
}

// LogException returns a consumer for Outcome.IfException that logs the
// captured error at error level.
func LogException(logger *zap.Logger, msg string, fields ...zap.Field) rop.Consumer[error] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(err error) {
		all := make([]zap.Field, 0, len(fields)+2)
		all = append(all, fields...)
		all = append(all, zap.String("error_type", rop.ErrorType(err)), zap.Error(err))
		logger.Error(msg, all...)
	}
}

// Report logs o through the context logger when it is a failure and returns
// it unchanged. The level and fingerprinting come from WithReportOptions and
// default to error level without fingerprint.
func Report[T any](ctx context.Context, o rop.Outcome[T], msg string, fields ...zap.Field) rop.Outcome[T] {
	if o.IsSuccess() {
		return o
	}

	logger := FromContext(ctx)
	level := GetReportLevel(ctx, zapcore.ErrorLevel)
	if ce := logger.Check(level, msg); ce != nil {
		all := make([]zap.Field, 0, len(fields)+1)
		all = append(all, fields...)
		all = append(all, FieldContext(ctx, "outcome", o))
		ce.Write(all...)
	}
	return o
}
