package state

import "github.com/ayoisaiah/focusboard/internal/models"

// Action is a request to change the board. The set of actions is closed.
type Action interface {
	action()
}

type (
	// SetInitialData replaces the whole state. Used when loading.
	SetInitialData struct {
		Data models.AppData
	}

	// AddTask appends a new task. ID, CreatedAt, UpdatedAt and
	// PomodoroTime are assigned by the reducer.
	AddTask struct {
		Task models.Task
	}

	// UpdateTask replaces the task with the same ID.
	UpdateTask struct {
		Task models.Task
	}

	DeleteTask struct {
		ID string
	}

	MoveTask struct {
		ID     string
		Status models.TaskStatus
	}

	// ReorderTasks replaces the task list with the given order.
	ReorderTasks struct {
		Tasks []models.Task
	}

	UpdateSettings struct {
		Settings models.PomodoroSettings
	}

	// AddSession appends to the session log. A missing ID or CompletedAt is
	// filled in by the reducer.
	AddSession struct {
		Session models.PomodoroSession
	}

	// AddFocusedTime credits focused seconds to a task.
	AddFocusedTime struct {
		TaskID  string
		Seconds int64
	}

	// AddSprint appends a new sprint. ID, CreatedAt and EndDate are
	// assigned by the reducer.
	AddSprint struct {
		Sprint models.Sprint
	}

	// UpdateSprint replaces the sprint with the same ID.
	UpdateSprint struct {
		Sprint models.Sprint
	}

	DeleteSprint struct {
		ID string
	}

	// CompleteSprint marks a sprint completed and every task it references
	// as done.
	CompleteSprint struct {
		ID string
	}

	ToggleTheme struct{}
)

func (SetInitialData) action() {}
func (AddTask) action()        {}
func (UpdateTask) action()     {}
func (DeleteTask) action()     {}
func (MoveTask) action()       {}
func (ReorderTasks) action()   {}
func (UpdateSettings) action() {}
func (AddSession) action()     {}
func (AddFocusedTime) action() {}
func (AddSprint) action()      {}
func (UpdateSprint) action()   {}
func (DeleteSprint) action()   {}
func (CompleteSprint) action() {}
func (ToggleTheme) action()    {}
