package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records eventkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordDispatch records a completed dispatch with the number of handlers
	// invoked and whether the event was cancelled.
	RecordDispatch(ctx context.Context, eventName string, handlers int, cancelled bool, duration time.Duration)

	// RecordHandler records a single handler invocation with its duration.
	RecordHandler(ctx context.Context, eventName, handlerName string, duration time.Duration)

	// RecordRegistration records a handler registration.
	RecordRegistration(ctx context.Context, eventName string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	dispatches      metric.Int64Counter
	cancellations   metric.Int64Counter
	dispatchLatency metric.Float64Histogram
	handlerRuns     metric.Int64Counter
	handlerLatency  metric.Float64Histogram
	registrations   metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventkit")

	dispatches, err := meter.Int64Counter("eventkit.dispatches",
		metric.WithDescription("Number of event dispatches"),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter("eventkit.cancellations",
		metric.WithDescription("Number of dispatches halted by cancellation"),
	)
	if err != nil {
		return nil, err
	}

	dispatchLatency, err := meter.Float64Histogram("eventkit.dispatch.latency_ms",
		metric.WithDescription("Dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	handlerRuns, err := meter.Int64Counter("eventkit.handler.invocations",
		metric.WithDescription("Number of handler invocations"),
	)
	if err != nil {
		return nil, err
	}

	handlerLatency, err := meter.Float64Histogram("eventkit.handler.latency_ms",
		metric.WithDescription("Handler invocation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("eventkit.registrations",
		metric.WithDescription("Number of handler registrations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		dispatches:      dispatches,
		cancellations:   cancellations,
		dispatchLatency: dispatchLatency,
		handlerRuns:     handlerRuns,
		handlerLatency:  handlerLatency,
		registrations:   registrations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDispatch records a completed dispatch.
func (m *otelMetrics) RecordDispatch(ctx context.Context, eventName string, handlers int, cancelled bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("event", eventName),
	}

	m.dispatches.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.dispatchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if cancelled {
		m.cancellations.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordHandler records a handler invocation.
func (m *otelMetrics) RecordHandler(ctx context.Context, eventName, handlerName string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("event", eventName),
		attribute.String("handler", handlerName),
	}
	m.handlerRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.handlerLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordRegistration records a handler registration.
func (m *otelMetrics) RecordRegistration(ctx context.Context, eventName string) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", eventName),
	))
}
