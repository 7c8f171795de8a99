// Package logging defines the minimal structured-logging interface used
// across satvocab. The shipped implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// interpreted as key-value pairs:
//
//	log.Info(ctx, "user signed up", "email", email)
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but non-fatal condition.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
