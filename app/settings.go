package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/report"
	"github.com/ayoisaiah/focusboard/state"
)

type minuteRange struct {
	name     string
	min, max int
}

var (
	workRange       = minuteRange{"work duration", 1, 120}
	shortBreakRange = minuteRange{"short break duration", 1, 30}
	longBreakRange  = minuteRange{"long break duration", 1, 60}
)

const (
	minSessions = 2
	maxSessions = 10
)

func (r minuteRange) check(v int) error {
	if v < r.min || v > r.max {
		return errSettingOutOfRange.Fmt(r.name, r.min, r.max, v)
	}

	return nil
}

func checkSessions(v int) error {
	if v < minSessions || v > maxSessions {
		return errSessionsOutOfRange.Fmt(minSessions, maxSessions, v)
	}

	return nil
}

// validateSettings applies the same bounds as the settings form.
func validateSettings(s models.PomodoroSettings) error {
	if err := workRange.check(s.WorkDuration); err != nil {
		return err
	}

	if err := shortBreakRange.check(s.ShortBreakDuration); err != nil {
		return err
	}

	if err := longBreakRange.check(s.LongBreakDuration); err != nil {
		return err
	}

	return checkSessions(s.SessionsBeforeLongBreak)
}

// intField returns a huh input bound to the string form of an integer.
func intField(title string, value *string, check func(int) error) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(func(s string) error {
			v, err := strconv.Atoi(s)
			if err != nil {
				return errNotANumber.Fmt(s)
			}

			return check(v)
		})
}

// settingsForm edits s interactively.
func settingsForm(s *models.PomodoroSettings) error {
	work := strconv.Itoa(s.WorkDuration)
	short := strconv.Itoa(s.ShortBreakDuration)
	long := strconv.Itoa(s.LongBreakDuration)
	sessions := strconv.Itoa(s.SessionsBeforeLongBreak)

	form := huh.NewForm(
		huh.NewGroup(
			intField("Work (minutes)", &work, workRange.check),
			intField("Short break (minutes)", &short, shortBreakRange.check),
			intField("Long break (minutes)", &long, longBreakRange.check),
			intField("Sessions before a long break", &sessions, checkSessions),
			huh.NewConfirm().
				Title("Play a sound when a phase ends?").
				Value(&s.SoundEnabled),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// the validators guarantee these parse
	s.WorkDuration, _ = strconv.Atoi(work)
	s.ShortBreakDuration, _ = strconv.Atoi(short)
	s.LongBreakDuration, _ = strconv.Atoi(long)
	s.SessionsBeforeLongBreak, _ = strconv.Atoi(sessions)

	return nil
}

func printSettings(w io.Writer, s models.PomodoroSettings) {
	sound := ui.Red("off")
	if s.SoundEnabled {
		sound = ui.Green("on")
	}

	ui.PrintTable([][]string{
		{"SETTING", "VALUE"},
		{"Work", fmt.Sprintf("%d mins", s.WorkDuration)},
		{"Short break", fmt.Sprintf("%d mins", s.ShortBreakDuration)},
		{"Long break", fmt.Sprintf("%d mins", s.LongBreakDuration)},
		{"Sessions before a long break", strconv.Itoa(s.SessionsBeforeLongBreak)},
		{"Sound", sound},
	}, w)
}

// settingsAction prints the pomodoro settings or updates them from flags
// or an interactive form.
func (a *App) settingsAction(ctx *cli.Context) error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}

	s := board.State().PomodoroSettings

	changed := false

	for _, f := range []struct {
		name string
		dst  *int
	}{
		{workFlag.Name, &s.WorkDuration},
		{shortBreakFlag.Name, &s.ShortBreakDuration},
		{longBreakFlag.Name, &s.LongBreakDuration},
		{sessionsFlag.Name, &s.SessionsBeforeLongBreak},
	} {
		if ctx.IsSet(f.name) {
			*f.dst = ctx.Int(f.name)
			changed = true
		}
	}

	if ctx.IsSet(soundEnabledFlag.Name) {
		s.SoundEnabled = ctx.Bool(soundEnabledFlag.Name)
		changed = true
	}

	if ctx.Bool(interactiveFlag.Name) {
		err = settingsForm(&s)
		if err != nil {
			return err
		}

		changed = true
	}

	if !changed {
		printSettings(a.stdout, s)
		return nil
	}

	err = validateSettings(s)
	if err != nil {
		return err
	}

	board.Dispatch(state.UpdateSettings{Settings: s})

	report.Success(a.stdout, "settings updated")
	printSettings(a.stdout, board.State().PomodoroSettings)

	return nil
}
