package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type OptionKey string

const (
	AwaitOptionKey  OptionKey = "await_options"
	LoggerOptionKey OptionKey = "logger_options"
)

type AwaitOptions struct {
	Timeout time.Duration
}

type LoggerOptions struct {
	Logger *zap.Logger
}

// WithAwaitOptions bounds every AwaitContext performed with the returned
// context. A non-positive timeout leaves waits unbounded.
func WithAwaitOptions(ctx context.Context, timeout time.Duration) context.Context {
	return context.WithValue(ctx, AwaitOptionKey, AwaitOptions{Timeout: timeout})
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func GetAwaitTimeout(ctx context.Context, defaultTimeout time.Duration) time.Duration {
	options, ok := ctx.Value(AwaitOptionKey).(AwaitOptions)
	if ok {
		return options.Timeout
	}
	return defaultTimeout
}

func LoggerFrom(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return defaultLogger
}
