package vartmpl

import (
	"log/slog"

	"github.com/randalmurphal/vartmpl/pkg/vartmpl/observability"
)

// Option configures an Engine.
type Option func(*Engine)

// WithCache enables or disables the compiled-template cache.
//
// Default: true (enabled)
func WithCache(enabled bool) Option {
	return func(e *Engine) {
		e.cacheEnabled = enabled
	}
}

// WithKeepMissing makes Format render placeholders with no supplied value
// back in the engine's syntax instead of failing.
//
// Default: false (missing values fail with *MissingValueError)
//
// Example:
//
//	eng := vartmpl.New(vartmpl.DollarBrace, vartmpl.WithKeepMissing(true))
//	out, _ := eng.Format(ctx, "${present} ${missing}", map[string]string{"present": "here"})
//	// out: "here ${missing}"
func WithKeepMissing(enabled bool) Option {
	return func(e *Engine) {
		e.keepMissing = enabled
	}
}

// WithUnusedCheck makes Format fail with *UnusedValuesError when the
// values map contains keys no placeholder references.
//
// Default: false (extra keys are ignored)
func WithUnusedCheck(enabled bool) Option {
	return func(e *Engine) {
		e.unusedCheck = enabled
	}
}

// WithAmbiguityCheck makes Format and Extract fail with *AmbiguityError
// when a value contains the literal separating two placeholders, i.e.
// when the formatted string would not decompose uniquely. Extraction
// still follows the deterministic leftmost policy; the check only adds
// a failure mode.
//
// Default: false
func WithAmbiguityCheck(enabled bool) Option {
	return func(e *Engine) {
		e.ambiguityCheck = enabled
	}
}

// WithLogger sets a logger for debug-level operation logging.
//
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics for engine operations.
// The recorder uses the global OTel meter provider; configure the
// provider before creating the engine.
//
// Default: false (no-op recorder)
func WithMetrics(enabled bool) Option {
	return func(e *Engine) {
		if enabled {
			e.metrics = observability.NewMetricsRecorder()
		} else {
			e.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry spans around engine operations.
// The span manager uses the global OTel tracer provider.
//
// Default: false (no-op span manager)
func WithTracing(enabled bool) Option {
	return func(e *Engine) {
		if enabled {
			e.spans = observability.NewSpanManager()
		} else {
			e.spans = observability.NoopSpanManager{}
		}
	}
}
