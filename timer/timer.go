// Package timer runs the pomodoro countdown and its terminal interface.
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/focusboard/internal/config"
	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/state"
)

const (
	padding  = 2
	maxWidth = 80
)

// tickMsg carries the tag of the tick chain that produced it. Ticks from a
// chain that has since been replaced are dropped.
type tickMsg struct {
	tag int
}

// Model is the bubbletea front end for an Engine.
type Model struct {
	engine         *Engine
	store          *state.Store
	taskForm       *huh.Form
	log            *slog.Logger
	now            func() time.Time
	formTaskID     string
	styles         ui.Styles
	help           help.Model
	progress       progress.Model
	tickTag        int
	twentyFourHour bool
}

// New returns a Model driving engine. The engine picks up settings changes
// dispatched to st.
func New(
	st *state.Store,
	engine *Engine,
	cfg *config.Config,
	log *slog.Logger,
) *Model {
	styles := ui.NewStyles(st.State().Theme)

	m := &Model{
		engine:         engine,
		store:          st,
		log:            log,
		now:            time.Now,
		styles:         styles,
		help:           help.New(),
		progress:       progress.New(progress.WithSolidFill(string(styles.Accent))),
		twentyFourHour: cfg.Display.TwentyFourHour,
	}

	m.progress.Width = maxWidth - padding*2 - 4

	st.Subscribe(func(s state.State) {
		if s.PomodoroSettings != engine.Settings() {
			engine.SetSettings(s.PomodoroSettings)
		}
	})

	return m
}

func (m *Model) tick() tea.Cmd {
	tag := m.tickTag

	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{tag: tag}
	})
}

// restartTicks drops any tick in flight and starts a new one-second chain
// if the engine is running, so a resumed countdown gets a full second.
func (m *Model) restartTicks() tea.Cmd {
	m.tickTag++

	if !m.engine.Status().Running {
		return nil
	}

	return m.tick()
}

func (m *Model) Init() tea.Cmd {
	return m.restartTicks()
}

// newTaskForm builds a picker over the tasks that are not done yet.
func (m *Model) newTaskForm() *huh.Form {
	current := m.engine.Status().SelectedTaskID

	opts := []huh.Option[string]{
		huh.NewOption("Free session", "").Selected(current == ""),
	}

	for _, t := range m.store.State().Tasks {
		if t.Status == models.StatusDone {
			continue
		}

		opts = append(opts, huh.NewOption(t.Title, t.ID).Selected(t.ID == current))
	}

	m.formTaskID = current

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Focus on").
				Options(opts...).
				Value(&m.formTaskID),
		),
	).WithShowHelp(true)
}

// Run starts the interactive timer. A non-empty taskID preselects that
// task.
func Run(
	st *state.Store,
	cfg *config.Config,
	log *slog.Logger,
	taskID string,
) error {
	engine := NewEngine(
		st.State().PomodoroSettings,
		st,
		NewDesktopNotifier(cfg, log),
	)

	if taskID != "" {
		t, ok := st.State().TaskByID(taskID)
		if !ok {
			return errTaskNotFound.Fmt(taskID)
		}

		engine.SelectTask(t.ID, t.Title)
	}

	p := tea.NewProgram(New(st, engine, cfg, log))

	_, err := p.Run()

	return err
}
