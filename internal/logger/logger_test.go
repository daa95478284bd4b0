package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusboard/internal/config"
)

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter(&buf, slog.LevelWarn)

	l.Info("ignored")
	l.Warn("kept", slog.String("key", "productivity-app-data"))

	var rec map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "productivity-app-data", rec["key"])
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "focusboard.log")

	cfg := &config.Config{
		Log: config.LogConfig{Level: "debug", MaxSizeMB: 1, MaxBackups: 1},
	}

	l, closer, err := New(cfg, path)
	require.NoError(t, err)

	l.Debug("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "chatty"}}

	_, _, err := New(cfg, filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}
