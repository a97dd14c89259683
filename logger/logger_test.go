package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Named("test").Debugw("hello", "k", 1) })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"DEBUG":   "debug",
		"warning": "warn",
		"error":   "error",
		"":        "info",
		"bogus":   "info",
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in).String(), "level %q", in)
	}
}

func TestInitialize(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev; JSONOutput = false })

	require.NoError(t, Initialize(false, "debug"))
	assert.False(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(true, "warn"))
	assert.True(t, JSONOutput)
	assert.False(t, Logger.Desugar().Core().Enabled(zap.InfoLevel))
}
