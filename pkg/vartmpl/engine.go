package vartmpl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/randalmurphal/vartmpl/pkg/vartmpl/observability"
)

// Engine binds a syntax to a compiled-template cache and behavior
// options, and carries the observability hooks. Use an Engine when the
// same raw templates are formatted or extracted repeatedly, or when the
// non-strict behaviors (keep-missing, unused check, ambiguity check) are
// needed.
//
// Engine is safe for concurrent use after construction. Only the cache
// mutates, behind a lock.
type Engine struct {
	syntax Syntax

	keepMissing    bool
	unusedCheck    bool
	ambiguityCheck bool

	cacheEnabled bool
	mu           sync.RWMutex
	cache        map[string]*Template

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an Engine for the given syntax.
//
// Defaults: caching enabled, strict formatting (missing values fail,
// extra keys ignored), no ambiguity check, no logging, no-op metrics and
// tracing.
//
// Example:
//
//	eng := vartmpl.New(vartmpl.DollarBrace,
//	    vartmpl.WithUnusedCheck(true),
//	    vartmpl.WithLogger(logger),
//	)
func New(syn Syntax, opts ...Option) *Engine {
	e := &Engine{
		syntax:       syn,
		cacheEnabled: true,
		cache:        make(map[string]*Template),
		metrics:      observability.NoopMetrics{},
		spans:        observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Syntax returns the syntax the engine compiles with.
func (e *Engine) Syntax() Syntax {
	return e.syntax
}

// Compile compiles raw with the engine's syntax, consulting the cache
// first. The returned Template is shared: concurrent callers compiling
// the same raw string receive the same immutable Template.
func (e *Engine) Compile(ctx context.Context, raw string) (*Template, error) {
	if e.cacheEnabled {
		e.mu.RLock()
		t, ok := e.cache[raw]
		e.mu.RUnlock()
		e.metrics.RecordCacheLookup(ctx, ok)
		if ok {
			return t, nil
		}
	}

	ctx, span := e.spans.StartCompileSpan(ctx, len(raw))
	start := time.Now()
	t, err := Compile(raw, e.syntax)
	dur := time.Since(start)
	e.metrics.RecordCompile(ctx, dur, err)
	e.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogCompileError(e.logger, err)
		return nil, err
	}
	observability.LogCompile(e.logger, t.NumPlaceholders(), durationMs(dur))

	if e.cacheEnabled {
		e.mu.Lock()
		e.cache[raw] = t
		e.mu.Unlock()
	}
	return t, nil
}

// Format compiles raw (cache-aware) and renders it with values, applying
// the engine's behavior options.
func (e *Engine) Format(ctx context.Context, raw string, values map[string]string) (string, error) {
	t, err := e.Compile(ctx, raw)
	if err != nil {
		return "", err
	}
	return e.FormatTemplate(ctx, t, values)
}

// FormatTemplate renders a pre-compiled template with values, applying
// the engine's behavior options.
func (e *Engine) FormatTemplate(ctx context.Context, t *Template, values map[string]string) (string, error) {
	ctx, span := e.spans.StartFormatSpan(ctx, t.NumPlaceholders())
	start := time.Now()
	out, err := formatTemplate(t, values, formatOptions{
		keepMissing:    e.keepMissing,
		unusedCheck:    e.unusedCheck,
		ambiguityCheck: e.ambiguityCheck,
	})
	dur := time.Since(start)
	e.metrics.RecordFormat(ctx, dur, err)
	e.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogOperationError(e.logger, "format", err)
		return "", err
	}
	observability.LogOperation(e.logger, "format", durationMs(dur))
	return out, nil
}

// Extract compiles raw (cache-aware) and decomposes input against it.
func (e *Engine) Extract(ctx context.Context, raw, input string) (map[string]string, error) {
	t, err := e.Compile(ctx, raw)
	if err != nil {
		return nil, err
	}
	return e.ExtractTemplate(ctx, t, input)
}

// ExtractTemplate decomposes input against a pre-compiled template,
// applying the engine's ambiguity option.
func (e *Engine) ExtractTemplate(ctx context.Context, t *Template, input string) (map[string]string, error) {
	ctx, span := e.spans.StartExtractSpan(ctx, len(input))
	start := time.Now()
	out, err := extractTemplate(t, input, e.ambiguityCheck)
	dur := time.Since(start)
	e.metrics.RecordExtract(ctx, dur, err)
	e.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogOperationError(e.logger, "extract", err)
		return nil, err
	}
	observability.LogOperation(e.logger, "extract", durationMs(dur))
	return out, nil
}

// CacheSize returns the number of cached compiled templates.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// ClearCache drops all cached compiled templates.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*Template)
}

// durationMs converts a duration to fractional milliseconds for logging.
func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
