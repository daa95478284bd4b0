package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration overrides.
type CLIOptions struct {
	Backend       string
	SoundFile     string
	SessionCmd    string
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that applies overrides from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Backend:       ctx.String("backend"),
			SoundFile:     ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Backend != "" {
		c.Storage.Backend = strings.ToLower(opts.Backend)
	}

	switch opts.SoundFile {
	case "":
	case "off":
		c.Sound.File = ""
	default:
		c.Sound.File = opts.SoundFile
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.Display.NoColor = opts.NoColor
}
