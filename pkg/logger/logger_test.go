package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	require.Equal(t, zapcore.WarnLevel, parseLevel(" WARN "))
	require.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	require.Equal(t, zapcore.InfoLevel, parseLevel(""))
	require.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func TestNew_RespectsLevel(t *testing.T) {
	l := New("error")
	require.NotNil(t, l.SugaredLogger)
	require.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Infow("ignored", "k", "v")
}

func TestSelect(t *testing.T) {
	dev := Select("warn", true)
	require.False(t, dev.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, dev.Desugar().Core().Enabled(zapcore.WarnLevel))
	// Development loggers panic on DPanic.
	require.Panics(t, func() { dev.DPanic("boom") })

	prod := Select("debug", false)
	require.True(t, prod.Desugar().Core().Enabled(zapcore.DebugLevel))
	require.NotPanics(t, func() { prod.DPanic("boom") })
}
