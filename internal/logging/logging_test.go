package logging

import (
	"testing"

	"github.com/jacksmith/keep/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		l, err := New("warn")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestHook(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	hook := Hook(zap.New(core), "profile")

	hook(storage.SeverityDebug, "save data to x")
	hook(storage.SeverityInfo, "load data from x")
	hook(storage.SeverityWarn, "careful")
	hook(storage.SeverityError, "load data error: boom")

	entries := logs.All()
	require.Len(t, entries, 4)

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		assert.Equal(t, want[i], e.Level)
		assert.Equal(t, "profile", e.ContextMap()["component"])
	}
	assert.Equal(t, "load data error: boom", entries[3].Message)
}
