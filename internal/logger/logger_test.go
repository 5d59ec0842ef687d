package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/config"
)

func TestNew_LevelOverride(t *testing.T) {
	cfg := &config.Config{Env: "production", Log: config.LogConfig{Level: "warn"}}

	l, err := New(cfg, "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(cfg, "debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_DevelopmentDefaultsToDebug(t *testing.T) {
	l, err := New(&config.Config{Env: "local"}, "")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.Config{}, "loud")
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typorax.log")
	l, err := New(&config.Config{Env: "production"}, "info", path)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Sync())
	assert.FileExists(t, path)
}
