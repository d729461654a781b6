// Package ctxlog carries a slog.Logger through context.Context so the
// manifest loader and CLI can log without threading a logger argument
// through every call.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type so this package's context key cannot collide
// with keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to the
// process-wide default logger when none was embedded. Record operations
// themselves never log; only the loading and CLI layers do.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
