// Package app wires the focusboard command-line interface.
package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusboard/internal/config"
	"github.com/ayoisaiah/focusboard/state"
	"github.com/ayoisaiah/focusboard/store"
)

// App holds what a command needs while it runs. The board is opened on
// first use so that commands like edit-config do not lock the data file.
type App struct {
	cfg     *config.Config
	storage *store.Storage
	board   *state.Store
	log     *slog.Logger
	now     func() time.Time
	stdout  io.Writer
	stdin   io.Reader
	closers []io.Closer
}

// Option configures an App.
type Option func(*App)

// WithStorage makes the App use s instead of the configured backend.
func WithStorage(s *store.Storage) Option {
	return func(a *App) {
		a.storage = s
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithIO redirects command output and prompts.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.stdin = in
		a.stdout = out
	}
}

// New returns an App with the given options applied.
func New(opts ...Option) *App {
	a := &App{
		now:    time.Now,
		stdout: config.Stdout,
		stdin:  config.Stdin,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focusboard app instance.
func Get() *cli.App {
	return New().CLI()
}

// CLI builds the command tree for a.
func (a *App) CLI() *cli.App {
	return &cli.App{
		Name: "focusboard",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Focusboard combines a kanban task board, a pomodoro timer and sprint
		planning with burndown tracking in one terminal tool. Everything is
		stored locally.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Reader:               a.stdin,
		Writer:               a.stdout,
		Commands: []*cli.Command{
			{
				Name:    "board",
				Aliases: []string{"b"},
				Usage:   "Show the kanban board",
				Action:  a.boardAction,
			},
			a.taskCommand(),
			a.sprintCommand(),
			{
				Name:   "timer",
				Usage:  "Start the pomodoro timer",
				Flags:  []cli.Flag{taskIDFlag},
				Action: a.timerAction,
			},
			{
				Name:  "settings",
				Usage: "Show or change the pomodoro settings",
				Flags: []cli.Flag{
					workFlag,
					shortBreakFlag,
					longBreakFlag,
					sessionsFlag,
					soundEnabledFlag,
					interactiveFlag,
				},
				Action: a.settingsAction,
			},
			{
				Name:   "theme",
				Usage:  "Toggle between the light and dark theme",
				Action: a.themeAction,
			},
			{
				Name:   "stats",
				Usage:  "Show the productivity dashboard",
				Flags:  []cli.Flag{jsonFlag},
				Action: a.statsAction,
			},
			{
				Name:   "sessions",
				Usage:  "List the most recent focus sessions",
				Flags:  []cli.Flag{jsonFlag},
				Action: a.sessionsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: a.editConfigAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			noColorFlag,
			backendFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			soundFlag,
		},
		Action: a.boardAction,
		Before: a.beforeAction,
		After:  a.afterAction,
	}
}

// Run executes the app with the given command-line arguments.
func Run(args []string) error {
	return Get().Run(args)
}
