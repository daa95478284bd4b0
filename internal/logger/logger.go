// Package logger configures the structured debug log.
package logger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/focusboard/internal/config"
)

// New returns a JSON logger writing to a size-rotated file at path. The
// returned closer releases the file handle.
func New(cfg *config.Config, path string) (*slog.Logger, io.Closer, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}

	return NewWithWriter(w, lvl), w, nil
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
