package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "maproute.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path})
	require.NoError(t, err)

	zl.Info("hello", String("k", "v"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"})
	require.NoError(t, err)

	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		level  zapcore.Level
		msg    string
	}{
		{name: "ok", status: 200, level: zapcore.InfoLevel, msg: "Request processed"},
		{name: "client error", status: 404, level: zapcore.WarnLevel, msg: "Client error"},
		{name: "server error", status: 502, err: errors.New("upstream"), level: zapcore.ErrorLevel, msg: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			zl := NewFromZap(zap.New(core))

			zl.LogHTTPRequest("GET", "/v1/map", "127.0.0.1", "req-1", tt.status, 5*time.Millisecond, tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.msg, entry.Message)
			assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := GetGlobalLogger()
	SetGlobalLogger(NewFromZap(zap.New(core)))
	t.Cleanup(func() { SetGlobalLogger(previous) })

	Info("route fetched", Int("points", 2), Point("origin", 38.5, -120.2))
	Warn("no route")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, int64(2), logs.All()[0].ContextMap()["points"])
	assert.Equal(t, "no route", logs.All()[1].Message)
}
