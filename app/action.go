package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusboard/internal/config"
	"github.com/ayoisaiah/focusboard/internal/logger"
	"github.com/ayoisaiah/focusboard/internal/osutil"
	"github.com/ayoisaiah/focusboard/internal/pathutil"
	"github.com/ayoisaiah/focusboard/internal/static"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/report"
	"github.com/ayoisaiah/focusboard/state"
	"github.com/ayoisaiah/focusboard/stats"
	"github.com/ayoisaiah/focusboard/store"
	"github.com/ayoisaiah/focusboard/timer"
)

const (
	envNoColor           = "NO_COLOR"
	envFocusboardNoColor = "FOCUSBOARD_NO_COLOR"
)

// openBoard loads the board from storage the first time it is needed.
func (a *App) openBoard() (*state.Store, error) {
	if a.board != nil {
		return a.board, nil
	}

	if a.storage == nil {
		backend, err := store.NewBackend(a.cfg)
		if err != nil {
			return nil, err
		}

		a.storage = store.New(backend, a.log)
		a.closers = append(a.closers, a.storage)
	}

	board, err := state.Open(
		a.storage,
		state.WithClock(a.now),
		state.WithLogger(a.log),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = board.State().Theme.Dark()

	a.board = board

	return board, nil
}

func (a *App) beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envFocusboardNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(noColorFlag.Name) {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	configPath := osutil.FirstNonEmpty(
		ctx.String(configFlag.Name),
		pathutil.ConfigFilePath(),
	)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	a.cfg = cfg

	if a.log == nil {
		l, closer, err := logger.New(cfg, pathutil.LogFilePath())
		if err != nil {
			return err
		}

		a.log = l
		a.closers = append(a.closers, closer)
	}

	if err := static.Install(); err != nil {
		a.log.Warn("unable to install static files", slog.Any("error", err))
	}

	a.log.Debug(
		"starting focusboard",
		slog.String("version", config.Version),
		slog.String("config", configPath),
		slog.String("backend", cfg.Storage.Backend),
	)

	return nil
}

func (a *App) afterAction(_ *cli.Context) error {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.log != nil {
			a.log.Warn("unable to release resource", slog.Any("error", err))
		}
	}

	a.closers = nil
	a.board = nil

	return nil
}

// boardAction prints the three board columns.
func (a *App) boardAction(_ *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	printBoard(a.stdout, board.State())

	return nil
}

// timerAction starts the interactive pomodoro timer.
func (a *App) timerAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	return timer.Run(board, a.cfg, a.log, ctx.String(taskIDFlag.Name))
}

// themeAction toggles the persisted theme.
func (a *App) themeAction(_ *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	board.Dispatch(state.ToggleTheme{})

	theme := board.State().Theme
	ui.DarkTheme = theme.Dark()

	report.Success(a.stdout, "theme set to %s", theme)

	return nil
}

// statsAction prints the productivity dashboard.
func (a *App) statsAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	d := stats.Compute(board.State(), a.now())

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(a.stdout, d)
	}

	stats.Show(d, a.stdout)

	return nil
}

// sessionsAction lists the recent work sessions.
func (a *App) sessionsAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	sessions := stats.Recent(board.State())

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(a.stdout, sessions)
	}

	stats.List(sessions, a.stdout)

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func (a *App) editConfigAction(_ *cli.Context) error {
	return osutil.OpenInEditor(a.cfg.Path)
}

// confirm asks the user to press ENTER before a destructive operation.
func (a *App) confirm(ctx *cli.Context, msg string) bool {
	if ctx.Bool(yesFlag.Name) {
		return true
	}

	fmt.Fprint(a.stdout, pterm.Warning.Sprint(msg+". Press ENTER to proceed or type 'n' to cancel: "))

	var answer string

	// an empty line returns an error which counts as consent
	_, _ = fmt.Fscanln(a.stdin, &answer)

	return answer == "" || answer == "y" || answer == "yes"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
