package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"panic": zapcore.PanicLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)

	// Input is trimmed and lowercased before matching.
	got, ok := ParseLogLevel("  WARN ")
	require.True(t, ok)
	require.Equal(t, zapcore.WarnLevel, got)
}

// TestFromContextFallback verifies that a context without an attached logger
// yields the global logger instead of nil.
func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	got := FromContext(context.Background())
	require.NotNil(t, got)
	require.Same(t, Logger(), got)
}

// TestToContextRoundTrip verifies that an attached logger is returned as-is.
func TestToContextRoundTrip(t *testing.T) {
	t.Parallel()

	l := New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))
}

// TestWithName verifies that naming produces a distinct scoped logger.
func TestWithName(t *testing.T) {
	t.Parallel()

	ctx := ToContext(context.Background(), New(zapcore.InfoLevel))
	named := WithName(ctx, "installer")
	require.NotSame(t, FromContext(ctx), FromContext(named))
}

// TestWithLevel verifies the per-logger level override option.
func TestWithLevel(t *testing.T) {
	t.Parallel()

	l := New(zapcore.DebugLevel, WithLevel(zapcore.ErrorLevel))
	require.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
}
