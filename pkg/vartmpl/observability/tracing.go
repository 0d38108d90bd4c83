package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the vartmpl tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("vartmpl")

// SpanManager handles trace span lifecycle for template operations.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCompileSpan starts a span for a template compilation.
	StartCompileSpan(ctx context.Context, templateLen int) (context.Context, trace.Span)

	// StartFormatSpan starts a span for a format call.
	StartFormatSpan(ctx context.Context, placeholders int) (context.Context, trace.Span)

	// StartExtractSpan starts a span for an extract call.
	StartExtractSpan(ctx context.Context, inputLen int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartCompileSpan starts a span for a template compilation.
func (m *otelSpanManager) StartCompileSpan(ctx context.Context, templateLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "vartmpl.compile",
		trace.WithAttributes(
			attribute.Int("template.len", templateLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartFormatSpan starts a span for a format call.
func (m *otelSpanManager) StartFormatSpan(ctx context.Context, placeholders int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "vartmpl.format",
		trace.WithAttributes(
			attribute.Int("template.placeholders", placeholders),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartExtractSpan starts a span for an extract call.
func (m *otelSpanManager) StartExtractSpan(ctx context.Context, inputLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "vartmpl.extract",
		trace.WithAttributes(
			attribute.Int("input.len", inputLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
