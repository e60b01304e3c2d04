package ropzap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger"
	ReportOptionKey OptionKey = "report_options"
)

type ReportOptions struct {
	Level       zapcore.Level
	Fingerprint bool
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// FromContext returns the logger stored by WithLogger, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerOptionKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

func WithReportOptions(ctx context.Context, level zapcore.Level, fingerprint bool) context.Context {
	return context.WithValue(ctx, ReportOptionKey, ReportOptions{Level: level, Fingerprint: fingerprint})
}

func GetReportLevel(ctx context.Context, defaultLevel zapcore.Level) zapcore.Level {
	options, ok := ctx.Value(ReportOptionKey).(ReportOptions)
	if ok {
		return options.Level
	}
	return defaultLevel
}

func IsFingerprintEnabled(ctx context.Context, defaultFingerprint bool) bool {
	options, ok := ctx.Value(ReportOptionKey).(ReportOptions)
	if ok {
		return options.Fingerprint
	}
	return defaultFingerprint
}
