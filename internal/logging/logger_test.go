package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	err := InitLogger()
	require.NoError(t, err)
	assert.True(t, Logger.Unwrap().Core().Enabled(zapcore.DebugLevel))
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	// Invalid level falls back to the production default (info)
	t.Setenv("LOG_LEVEL", "loud")

	err := InitLogger()
	require.NoError(t, err)
	assert.False(t, Logger.Unwrap().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Unwrap().Core().Enabled(zapcore.InfoLevel))
}

func TestSafeLogger_WritesThroughToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewSafeLogger(zap.New(core))

	logger.Debug("debug message")
	logger.Info("info message", zap.String("field", "mode"))
	logger.Warn("warn message")
	logger.Error("error message")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "mode", entries[1].ContextMap()["field"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestSafeLogger_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
	assert.NoError(t, logger.Sync())
}

func TestSafeLogger_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger

	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
	assert.NoError(t, logger.Sync())
}

func TestSafeLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewSafeLogger(zap.New(core))

	child := logger.With(zap.String("request_id", "abc"))
	require.NotNil(t, child)
	child.Info("with context")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
}

func TestSafeLogger_With_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	assert.Equal(t, logger, logger.With(zap.String("key", "value")))
}

func TestSafeLogger_With_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger

	assert.Nil(t, logger.With(zap.String("key", "value")))
}

func TestSafeLogger_Unwrap(t *testing.T) {
	zapLogger := zap.NewNop()
	logger := &SafeLogger{logger: zapLogger}

	assert.Equal(t, zapLogger, logger.Unwrap())

	var nilLogger *SafeLogger
	assert.NotNil(t, nilLogger.Unwrap())
	assert.NotNil(t, (&SafeLogger{}).Unwrap())
}

func TestGlobalLogger(t *testing.T) {
	// Global logger is usable before InitLogger
	assert.NotNil(t, Logger)
	Logger.Info("test message")
}
