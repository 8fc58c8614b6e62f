package logging

import (
	"context"
	"log/slog"
)

// Logger is the logging surface the openblt bindings write to. Arguments are
// alternating key/value pairs as in slog.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger writing to h. Passing nil uses slog.Default().
func New(h *slog.Logger) Logger {
	if h == nil {
		h = slog.Default()
	}
	return slogLogger{h}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return slogLogger{slog.New(slog.DiscardHandler)}
}

type slogLogger struct {
	*slog.Logger
}

func (l slogLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	l.Log(ctx, level, msg, args...)
}

func (l slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args)
}

func (l slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args)
}

func (l slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args)
}

func (l slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args)
}

func (l slogLogger) With(args ...any) Logger {
	return slogLogger{l.Logger.With(args...)}
}
