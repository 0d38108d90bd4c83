package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records vartmpl metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCompile records a compilation with its duration and error status.
	RecordCompile(ctx context.Context, duration time.Duration, err error)

	// RecordFormat records a format call with its duration and error status.
	RecordFormat(ctx context.Context, duration time.Duration, err error)

	// RecordExtract records an extract call with its duration and error status.
	RecordExtract(ctx context.Context, duration time.Duration, err error)

	// RecordCacheLookup records a compiled-template cache lookup.
	RecordCacheLookup(ctx context.Context, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	operations   metric.Int64Counter
	errors       metric.Int64Counter
	latency      metric.Float64Histogram
	cacheLookups metric.Int64Counter
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
	meter := otel.Meter("vartmpl")

	operations, err := meter.Int64Counter("vartmpl.operations",
		metric.WithDescription("Number of template operations, by op"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("vartmpl.errors",
		metric.WithDescription("Number of failed template operations, by op"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("vartmpl.latency_ms",
		metric.WithDescription("Template operation latency in milliseconds, by op"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheLookups, err := meter.Int64Counter("vartmpl.cache.lookups",
		metric.WithDescription("Compiled-template cache lookups, by result"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		operations:   operations,
		errors:       errs,
		latency:      latency,
		cacheLookups: cacheLookups,
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
		return NoopMetrics{}
	}
	return m
}

// record emits one operation: counter, optional error counter, latency.
func (m *otelMetrics) record(ctx context.Context, op string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("op", op))
	m.operations.Add(ctx, 1, attrs)
	if err != nil {
		m.errors.Add(ctx, 1, attrs)
	}
	m.latency.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)
}

// RecordCompile implements MetricsRecorder.
func (m *otelMetrics) RecordCompile(ctx context.Context, duration time.Duration, err error) {
	m.record(ctx, "compile", duration, err)
}

// RecordFormat implements MetricsRecorder.
func (m *otelMetrics) RecordFormat(ctx context.Context, duration time.Duration, err error) {
	m.record(ctx, "format", duration, err)
}

// RecordExtract implements MetricsRecorder.
func (m *otelMetrics) RecordExtract(ctx context.Context, duration time.Duration, err error) {
	m.record(ctx, "extract", duration, err)
}

// RecordCacheLookup implements MetricsRecorder.
func (m *otelMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
