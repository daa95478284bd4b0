package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Sound.File != "" {
		if err := validateSound(c.Sound.File); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendBolt, BackendSQLite, BackendFile:
		return nil
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level

	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}

	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return lvl, errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return lvl, nil
}

func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(sound)
	}

	return nil
}
