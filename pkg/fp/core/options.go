package core

import (
	"context"
	"io"
	"log/slog"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	DispatchOptionKey OptionKey = "dispatch_options"
)

type LoggerOptions struct {
	Logger *slog.Logger
}

type DispatchOptions struct {
	Name string
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithDispatchName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, DispatchOptionKey, DispatchOptions{Name: name})
}

// Logger returns the logger stored on ctx, or one that discards everything.
func Logger(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return discardLogger
}

func GetDispatchName(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(DispatchOptionKey).(DispatchOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return defaultName
}
