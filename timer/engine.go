package timer

import (
	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/state"
)

// Notifier is told when a phase runs out.
type Notifier interface {
	// Notify reports the transition from one phase to the next.
	Notify(from, to models.Phase)
	// Alert plays the audible alert.
	Alert()
}

// Status is a snapshot of the engine.
type Status struct {
	Phase             models.Phase
	SelectedTaskID    string
	SelectedTaskTitle string
	Remaining         int
	Total             int
	SessionsCompleted int
	Accumulated       int64
	Running           bool
}

// Engine is the pomodoro state machine. It counts down in whole seconds
// and has no clock of its own: the caller invokes Tick once per second.
type Engine struct {
	dispatcher state.Dispatcher
	notifier   Notifier
	settings   models.PomodoroSettings
	status     Status
}

// NewEngine returns a stopped engine at the start of a work phase.
func NewEngine(
	settings models.PomodoroSettings,
	d state.Dispatcher,
	n Notifier,
) *Engine {
	e := &Engine{
		dispatcher: d,
		notifier:   n,
		settings:   settings,
	}

	e.status.Phase = models.Work
	e.resetClock()

	return e
}

func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) Settings() models.PomodoroSettings {
	return e.settings
}

func (e *Engine) Start() {
	e.status.Running = true
}

// Pause stops the countdown and keeps the remaining time.
func (e *Engine) Pause() {
	e.status.Running = false
}

// Toggle starts a paused engine or pauses a running one.
func (e *Engine) Toggle() {
	e.status.Running = !e.status.Running
}

// Tick advances the countdown by one second. Focused time is credited only
// during work with a task selected. The phase expires in the same tick that
// brings the remaining time to zero.
func (e *Engine) Tick() {
	if !e.status.Running {
		return
	}

	if e.status.Remaining > 0 {
		e.status.Remaining--

		if e.status.Phase == models.Work && e.status.SelectedTaskID != "" {
			e.status.Accumulated++
		}
	}

	if e.status.Remaining == 0 {
		e.expire()
	}
}

func (e *Engine) expire() {
	from := e.status.Phase

	e.status.Running = false

	if from == models.Work {
		s := e.status

		if s.SelectedTaskID != "" && s.Accumulated > 0 {
			e.dispatch(state.AddFocusedTime{
				TaskID:  s.SelectedTaskID,
				Seconds: s.Accumulated,
			})
		}

		e.dispatch(state.AddSession{Session: models.PomodoroSession{
			TaskID:    s.SelectedTaskID,
			TaskTitle: s.SelectedTaskTitle,
			Type:      models.Work,
			Duration:  int64(e.settings.Duration(models.Work)),
		}})
	}

	to := e.advance()

	if e.notifier == nil {
		return
	}

	e.notifier.Notify(from, to)

	if e.settings.SoundEnabled {
		e.notifier.Alert()
	}
}

// Reset returns to a stopped work phase with a full duration. The session
// counter is kept so the long break cycle carries on.
func (e *Engine) Reset() {
	e.status.Running = false
	e.status.Phase = models.Work
	e.resetClock()
}

// Skip moves to the next phase without recording anything.
func (e *Engine) Skip() {
	e.status.Running = false
	e.advance()
}

func (e *Engine) SelectTask(id, title string) {
	e.status.SelectedTaskID = id
	e.status.SelectedTaskTitle = title
}

func (e *Engine) DeselectTask() {
	e.SelectTask("", "")
}

// Progress returns the elapsed share of the current phase as a percentage.
func (e *Engine) Progress() float64 {
	if e.status.Total <= 0 {
		return 0
	}

	elapsed := e.status.Total - e.status.Remaining

	return float64(elapsed) / float64(e.status.Total) * 100
}

// SetSettings replaces the settings. A stopped engine picks up the new
// duration for its current phase at once; a running countdown is left
// alone and the settings apply from the next phase.
func (e *Engine) SetSettings(s models.PomodoroSettings) {
	e.settings = s

	if !e.status.Running {
		e.status.Total = e.settings.Duration(e.status.Phase)
		e.status.Remaining = e.status.Total
	}
}

// advance moves to the phase that follows the current one and returns it.
func (e *Engine) advance() models.Phase {
	if e.status.Phase == models.Work {
		e.status.SessionsCompleted++

		if e.status.SessionsCompleted%e.longBreakInterval() == 0 {
			e.status.Phase = models.LongBreak
		} else {
			e.status.Phase = models.ShortBreak
		}
	} else {
		e.status.Phase = models.Work
	}

	e.resetClock()

	return e.status.Phase
}

func (e *Engine) longBreakInterval() int {
	return max(e.settings.SessionsBeforeLongBreak, 1)
}

func (e *Engine) resetClock() {
	e.status.Total = e.settings.Duration(e.status.Phase)
	e.status.Remaining = e.status.Total
	e.status.Accumulated = 0
}

func (e *Engine) dispatch(a state.Action) {
	if e.dispatcher != nil {
		e.dispatcher.Dispatch(a)
	}
}
