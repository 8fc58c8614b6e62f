// Package logging provides the logging facade used by the openblt bindings.
//
// The Logger interface is a context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Implementations
//
// New wraps a *slog.Logger:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	lib, err := openblt.Open(openblt.Config{Logger: logging.New(slog.New(handler))})
//
// NewZap wraps a *zap.Logger for applications that already use zap:
//
//	z, _ := zap.NewDevelopment()
//	lib, err := openblt.Open(openblt.Config{Logger: logging.NewZap(z)})
//
// Discard drops everything and is what the bindings use when no logger is
// configured.
//
// Arguments follow slog's alternating key/value convention for both
// implementations.
//
// # Levels
//
// Loading and binding log at debug level only: which file was opened and
// which optional exports were bound or missing. Every outcome a caller must
// act on is already returned as an error or through Library.Symbols, so the
// records are diagnostics, not a second error channel. The one exception is a
// failed load, logged at error level next to the returned error.
package logging
