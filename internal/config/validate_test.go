package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func validConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendBolt},
		Log:     LogConfig{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	wav := filepath.Join(dir, "bell.wav")
	if err := os.WriteFile(wav, []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"sound file", func(c *Config) { c.Sound.File = wav }, nil},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, nil},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, errUnknownBackend},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, errInvalidLogLevel},
		{
			"unsupported sound format",
			func(c *Config) { c.Sound.File = filepath.Join(dir, "bell.aac") },
			errInvalidSoundFormat,
		},
		{
			"missing sound file",
			func(c *Config) { c.Sound.File = filepath.Join(dir, "missing.mp3") },
			errSoundNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("focusboard", flag.ContinueOnError)
	f.String("backend", "", "")
	f.String("sound", "", "")
	f.String("session-cmd", "", "")
	f.Bool("disable-notification", false, "")
	f.Bool("no-color", false, "")

	err := f.Parse([]string{
		"--backend", "SQLite",
		"--sound", "off",
		"--session-cmd", "echo done",
		"--disable-notification",
	})
	if err != nil {
		t.Fatal(err)
	}

	c := validConfig()
	c.Sound.File = "/tmp/bell.mp3"
	c.Notifications.Enabled = true

	ctx := cli.NewContext(&cli.App{}, f, nil)

	err = WithCLIConfig(ctx)(c)
	assert.NoError(t, err)

	assert.Equal(t, BackendSQLite, c.Storage.Backend)
	assert.Empty(t, c.Sound.File)
	assert.Equal(t, "echo done", c.Settings.Cmd)
	assert.False(t, c.Notifications.Enabled)
	assert.False(t, c.Display.NoColor)
}
