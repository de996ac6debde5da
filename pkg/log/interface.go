// Package log provides structured logging for evalgo evaluation runs.
//
// The package defines a minimal, slog-compatible logging interface plus the
// process-wide JSON setup used by the CLI. Structured attribute keys for the
// evaluation domain (task, metric, dataset shape) live in attributes.go so
// log output stays consistent and filterable across packages.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("evaluation").With(
//	    log.TaskKey, "AUC",
//	    log.DataPathKey, "test.dat",
//	)
//	logger.Info("evaluation finished",
//	    log.MetricKey, "AUC",
//	    log.InstancesKey, 1000,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface is implementation-agnostic: production code runs on the slog
// backend installed by SetupLogger, tests swap in TestLogger to assert on
// captured entries. With returns a derived logger carrying fixed fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// Pass the error value under the "error" key so the stacktrace handler
	// can pick it up.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//
	//	evalLogger := logger.With(log.TaskKey, "RMSE")
	//	evalLogger.Info("starting evaluation") // carries task.selector
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive attribute construction for disabled levels.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
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

// LoggerProvider creates and configures loggers. It exists for dependency
// injection: tests use TestLoggerProvider, everything else the default
// slog-backed provider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}
