// Package logging provides a minimal logging facade for the dds wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to plug in their own backend.
//
// # Logger Interface
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
//	// slog, nil binds to slog.Default()
//	logger := logging.New(nil)
//
//	// zap, as used by the ddsolve command
//	z, _ := zap.NewProduction()
//	logger = logging.NewZap(z)
//
//	// discard everything
//	logger = logging.Nop()
//
// Arguments follow the slog convention of alternating keys and values:
//
//	logger.Info(ctx, "engine ready", "threads", 8, "version", "2.9.0")
package logging
