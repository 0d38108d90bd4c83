// Package observability provides the observability layer for vartmpl:
// structured logging via slog, metrics and tracing via OpenTelemetry.
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogCompile logs a successful template compilation.
func LogCompile(logger *slog.Logger, placeholders int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("template compiled",
		slog.Int("placeholders", placeholders),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCompileError logs a failed template compilation.
func LogCompileError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("template compile failed",
		slog.String("error", err.Error()),
	)
}

// LogOperation logs a successful format or extract call.
func LogOperation(logger *slog.Logger, op string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("template operation completed",
		slog.String("op", op),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogOperationError logs a failed format or extract call.
func LogOperationError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Debug("template operation failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start)) / float64(time.Millisecond)
	}
}
