// Package config loads focusboard's runtime configuration from the YAML
// config file and command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Path          string             `mapstructure:"-"`
	}

	// StorageConfig selects where the board is persisted.
	StorageConfig struct {
		Backend string `mapstructure:"backend"`
		Path    string `mapstructure:"path"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SoundConfig holds the alert sound played when a phase ends.
	SoundConfig struct {
		File string `mapstructure:"file"`
	}

	// SettingsConfig holds miscellaneous behaviour settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		NoColor        bool `mapstructure:"-"`
	}

	// LogConfig controls the debug log file.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
