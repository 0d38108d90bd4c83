package vartmpl

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEngine_FormatExtract tests the raw-string convenience surface.
func TestEngine_FormatExtract(t *testing.T) {
	eng := New(DollarBrace)
	ctx := context.Background()

	out, err := eng.Format(ctx, "Hi ${name}!", map[string]string{"name": "mom"})
	require.NoError(t, err)
	assert.Equal(t, "Hi mom!", out)

	vals, err := eng.Extract(ctx, "archive-${date}.tar.gz", "archive-1970-01-01.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"date": "1970-01-01"}, vals)
}

// TestEngine_Cache tests compiled-template reuse.
func TestEngine_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("same template is shared", func(t *testing.T) {
		eng := New(DollarBrace)

		t1, err := eng.Compile(ctx, "${a}-${b}")
		require.NoError(t, err)
		t2, err := eng.Compile(ctx, "${a}-${b}")
		require.NoError(t, err)

		assert.Same(t, t1, t2)
		assert.Equal(t, 1, eng.CacheSize())
	})

	t.Run("failed compiles are not cached", func(t *testing.T) {
		eng := New(DollarBrace)

		_, err := eng.Compile(ctx, "${broken")
		require.Error(t, err)
		assert.Equal(t, 0, eng.CacheSize())
	})

	t.Run("cache disabled", func(t *testing.T) {
		eng := New(DollarBrace, WithCache(false))

		t1, err := eng.Compile(ctx, "${a}")
		require.NoError(t, err)
		t2, err := eng.Compile(ctx, "${a}")
		require.NoError(t, err)

		assert.NotSame(t, t1, t2)
		assert.Equal(t, 0, eng.CacheSize())
	})

	t.Run("clear cache", func(t *testing.T) {
		eng := New(DollarBrace)

		_, err := eng.Compile(ctx, "${a}")
		require.NoError(t, err)
		require.Equal(t, 1, eng.CacheSize())

		eng.ClearCache()
		assert.Equal(t, 0, eng.CacheSize())
	})
}

// TestEngine_Options tests the behavior options through the engine surface.
func TestEngine_Options(t *testing.T) {
	ctx := context.Background()

	t.Run("keep missing", func(t *testing.T) {
		eng := New(DollarBrace, WithKeepMissing(true))
		out, err := eng.Format(ctx, "${present} ${missing}", map[string]string{"present": "present"})
		require.NoError(t, err)
		assert.Equal(t, "present ${missing}", out)
	})

	t.Run("unused check", func(t *testing.T) {
		eng := New(DollarBrace, WithUnusedCheck(true))
		_, err := eng.Format(ctx, "${a}", map[string]string{"a": "1", "b": "2"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnusedValues)
	})

	t.Run("ambiguity check applies to format", func(t *testing.T) {
		eng := New(DollarBrace, WithAmbiguityCheck(true))
		_, err := eng.Format(ctx, "${a}-${b}", map[string]string{"a": "x-y", "b": "z"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguous)
	})

	t.Run("ambiguity check applies to extract", func(t *testing.T) {
		eng := New(DollarBrace, WithAmbiguityCheck(true))
		_, err := eng.Extract(ctx, "${a}-${b}", "x-y-z")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguous)
	})

	t.Run("defaults are strict", func(t *testing.T) {
		eng := New(DollarBrace)
		assert.False(t, eng.keepMissing)
		assert.False(t, eng.unusedCheck)
		assert.False(t, eng.ambiguityCheck)
		assert.True(t, eng.cacheEnabled)
	})
}

// TestEngine_Templates tests the pre-compiled template surface.
func TestEngine_Templates(t *testing.T) {
	ctx := context.Background()
	eng := New(ClassicBrace, WithKeepMissing(true))

	tmpl := MustCompile("{a}/{b}", ClassicBrace)

	out, err := eng.FormatTemplate(ctx, tmpl, map[string]string{"a": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x/{b}", out)

	vals, err := eng.ExtractTemplate(ctx, tmpl, "x/y")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "x", "b": "y"}, vals)
}

// TestEngine_Logger tests that a configured logger receives operation logs.
func TestEngine_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	eng := New(DollarBrace, WithLogger(logger))
	ctx := context.Background()

	_, err := eng.Format(ctx, "${a}", map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "template compiled")
	assert.Contains(t, buf.String(), "template operation completed")

	buf.Reset()
	_, err = eng.Extract(ctx, "${a}-end", "-end")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "template operation failed")
}

// TestEngine_MetricsSmoke tests that enabling metrics does not change results.
func TestEngine_MetricsSmoke(t *testing.T) {
	eng := New(DollarBrace, WithMetrics(true), WithTracing(true))
	ctx := context.Background()

	out, err := eng.Format(ctx, ">${var}<", map[string]string{"var": "1"})
	require.NoError(t, err)
	assert.Equal(t, ">1<", out)

	vals, err := eng.Extract(ctx, ">${var}<", ">1<")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"var": "1"}, vals)
}

// TestEngine_Concurrent hammers one engine and one shared template from
// many goroutines.
func TestEngine_Concurrent(t *testing.T) {
	eng := New(DollarBrace)
	ctx := context.Background()
	tmpl := MustCompile("archive-${date}.tar.gz", DollarBrace)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				out, err := eng.Format(ctx, "archive-${date}.tar.gz", map[string]string{"date": "1970-01-01"})
				assert.NoError(t, err)
				assert.Equal(t, "archive-1970-01-01.tar.gz", out)

				vals, err := tmpl.Extract(out)
				assert.NoError(t, err)
				assert.Equal(t, map[string]string{"date": "1970-01-01"}, vals)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, eng.CacheSize())
}
