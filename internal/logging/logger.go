// Package logging defines the structured logger the REST and gRPC servers
// log through. The slog adapter below is the only implementation in
// production; tests substitute no-op loggers.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "rest server starting", "address", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs. Each server tags itself with a "module" attribute this way.
	With(args ...any) Logger
}
