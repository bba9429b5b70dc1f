// Package observability provides production-grade observability features
// for eventkit: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds eventkit context to a logger.
// Returns a new logger with event and handler fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "entity.damage", "*game.armorHandler")
//	enriched.Debug("applying reduction") // includes event, handler
func EnrichLogger(logger *slog.Logger, eventName, handlerName string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("event", eventName),
		slog.String("handler", handlerName),
	)
}

// LogRegistration logs a handler registration.
func LogRegistration(logger *slog.Logger, eventName, handlerName string, priority string) {
	if logger == nil {
		return
	}
	logger.Debug("handler registered",
		slog.String("event", eventName),
		slog.String("handler", handlerName),
		slog.String("priority", priority),
	)
}

// LogDispatch logs a completed dispatch.
func LogDispatch(logger *slog.Logger, eventName string, handlers int, cancelled bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("event dispatched",
		slog.String("event", eventName),
		slog.Int("handlers", handlers),
		slog.Bool("cancelled", cancelled),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogNoListeners logs a dispatch that found no registry for its event kind.
func LogNoListeners(logger *slog.Logger, eventName string) {
	if logger == nil {
		return
	}
	logger.Debug("no handlers registered",
		slog.String("event", eventName),
	)
}

// LogHandlerPanic logs a recovered handler panic (recover policy only).
func LogHandlerPanic(logger *slog.Logger, eventName, handlerName string, recovered any) {
	if logger == nil {
		return
	}
	logger.Error("handler panicked",
		slog.String("event", eventName),
		slog.String("handler", handlerName),
		slog.Any("panic", recovered),
	)
}

// LogDeferred logs a command being queued for deferred application.
func LogDeferred(logger *slog.Logger, command string) {
	if logger == nil {
		return
	}
	logger.Debug("command deferred",
		slog.String("command", command),
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
		return float64(time.Since(start).Milliseconds())
	}
}
