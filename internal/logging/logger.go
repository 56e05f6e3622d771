// Package logging defines the structured-logging interface used across narvi.
// The default implementation wraps log/slog.
//
// Nothing derived from the master secret is ever passed to a Logger: the
// engine logs scheme ids, function ids and timings only.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Debug(ctx, "derived key material", "hashscheme", id, "took", d)
type Logger interface {
	// Debug logs diagnostic detail (scheme resolution, timings).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
