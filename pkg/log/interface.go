// Package log provides a structured logging interface for featselect
// search operations.
//
// The package defines a minimal, slog-compatible logging interface so that
// implementations can be switched freely, together with attribute keys for
// subset-search progress (algorithm, round, scores, removed variables).
// The default implementation is backed by log/slog with a handler that
// expands cockroachdb/errors stack traces into a dedicated attribute.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("selection").With(
//	    log.AlgorithmKey, "backward_elimination",
//	)
//	logger.Info("round complete",
//	    log.RoundKey, 3,
//	    log.ScoreKey, -7.0,
//	    log.RemovedKey, "c",
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog. Fields are alternating key-value pairs as in slog.
//
// The interface supports method chaining through With, allowing creation
// of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided under ErrAttrKey, stack trace
	// information is extracted by the default handler.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated in
	// all subsequent log messages.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given
	// level. Use it to avoid building expensive progress attributes that
	// would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
