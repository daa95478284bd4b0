// Package state holds the board in memory and applies actions to it.
package state

import (
	"slices"
	"time"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/store"
)

// State is the in-memory board.
type State struct {
	models.AppData
}

// Env supplies the values a transition may depend on besides the state
// itself.
type Env struct {
	Now   time.Time
	NewID func() string
}

// Effect is work the Store performs after a transition.
type Effect interface {
	effect()
}

// PersistEffect asks for the named slices of the new state to be saved.
type PersistEffect struct {
	Slices []store.Slice
}

func (PersistEffect) effect() {}

func persist(parts ...store.Slice) []Effect {
	return []Effect{PersistEffect{Slices: parts}}
}

// Reduce returns the state that results from applying a to s, and the
// effects to run. s is never modified. An action that refers to an unknown
// id returns s unchanged and no effects.
func Reduce(s State, a Action, env Env) (State, []Effect) {
	switch a := a.(type) {
	case SetInitialData:
		return State{AppData: a.Data}, nil
	case AddTask:
		return addTask(s, a, env)
	case UpdateTask:
		return updateTask(s, a, env)
	case DeleteTask:
		return deleteTask(s, a)
	case MoveTask:
		return moveTask(s, a, env)
	case ReorderTasks:
		s.Tasks = slices.Clone(a.Tasks)
		return s, persist(store.SliceTasks)
	case UpdateSettings:
		s.PomodoroSettings = a.Settings
		return s, persist(store.SliceSettings)
	case AddSession:
		return addSession(s, a, env)
	case AddFocusedTime:
		return addFocusedTime(s, a)
	case AddSprint:
		return addSprint(s, a, env)
	case UpdateSprint:
		return updateSprint(s, a)
	case DeleteSprint:
		return deleteSprint(s, a)
	case CompleteSprint:
		return completeSprint(s, a, env)
	case ToggleTheme:
		s.Theme = s.Theme.Toggle()
		return s, persist(store.SliceTheme)
	}

	return s, nil
}

func (s State) taskIndex(id string) int {
	return slices.IndexFunc(s.Tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

func (s State) sprintIndex(id string) int {
	return slices.IndexFunc(s.Sprints, func(sp models.Sprint) bool {
		return sp.ID == id
	})
}

func addTask(s State, a AddTask, env Env) (State, []Effect) {
	t := a.Task

	t.ID = env.NewID()
	t.PomodoroTime = 0
	t.CreatedAt = env.Now
	t.UpdatedAt = env.Now

	if t.Tags == nil {
		t.Tags = []string{}
	}

	if t.Status == "" {
		t.Status = models.StatusTodo
	}

	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}

	s.Tasks = append(slices.Clone(s.Tasks), t)

	return s, persist(store.SliceTasks)
}

func updateTask(s State, a UpdateTask, env Env) (State, []Effect) {
	i := s.taskIndex(a.Task.ID)
	if i < 0 {
		return s, nil
	}

	t := a.Task
	t.UpdatedAt = env.Now

	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i] = t

	return s, persist(store.SliceTasks)
}

func deleteTask(s State, a DeleteTask) (State, []Effect) {
	i := s.taskIndex(a.ID)
	if i < 0 {
		return s, nil
	}

	// Sprints keep their reference to the deleted task.
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), i, i+1)

	return s, persist(store.SliceTasks)
}

func moveTask(s State, a MoveTask, env Env) (State, []Effect) {
	i := s.taskIndex(a.ID)
	if i < 0 {
		return s, nil
	}

	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i].Status = a.Status
	s.Tasks[i].UpdatedAt = env.Now

	return s, persist(store.SliceTasks)
}

func addSession(s State, a AddSession, env Env) (State, []Effect) {
	sess := a.Session

	if sess.ID == "" {
		sess.ID = env.NewID()
	}

	if sess.CompletedAt.IsZero() {
		sess.CompletedAt = env.Now
	}

	s.PomodoroSessions = append(slices.Clone(s.PomodoroSessions), sess)

	return s, persist(store.SliceSessions)
}

func addFocusedTime(s State, a AddFocusedTime) (State, []Effect) {
	i := s.taskIndex(a.TaskID)
	if i < 0 || a.Seconds <= 0 {
		return s, nil
	}

	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i].PomodoroTime += a.Seconds

	return s, persist(store.SliceTasks)
}

func addSprint(s State, a AddSprint, env Env) (State, []Effect) {
	sp := a.Sprint

	sp.ID = env.NewID()
	sp.CreatedAt = env.Now
	sp.ComputeEndDate()

	if sp.TaskIDs == nil {
		sp.TaskIDs = []string{}
	}

	if sp.Status == "" {
		sp.Status = models.SprintPlanning
	}

	s.Sprints = append(slices.Clone(s.Sprints), sp)

	return s, persist(store.SliceSprints)
}

func updateSprint(s State, a UpdateSprint) (State, []Effect) {
	i := s.sprintIndex(a.Sprint.ID)
	if i < 0 {
		return s, nil
	}

	sp := a.Sprint
	sp.ComputeEndDate()

	s.Sprints = slices.Clone(s.Sprints)
	s.Sprints[i] = sp

	return s, persist(store.SliceSprints)
}

func deleteSprint(s State, a DeleteSprint) (State, []Effect) {
	i := s.sprintIndex(a.ID)
	if i < 0 {
		return s, nil
	}

	s.Sprints = slices.Delete(slices.Clone(s.Sprints), i, i+1)

	return s, persist(store.SliceSprints)
}

func completeSprint(s State, a CompleteSprint, env Env) (State, []Effect) {
	i := s.sprintIndex(a.ID)
	if i < 0 {
		return s, nil
	}

	s.Sprints = slices.Clone(s.Sprints)
	s.Sprints[i].Status = models.SprintCompleted

	sp := s.Sprints[i]

	s.Tasks = slices.Clone(s.Tasks)

	for j := range s.Tasks {
		t := &s.Tasks[j]

		if !sp.HasTask(t.ID) || t.Status == models.StatusDone {
			continue
		}

		t.Status = models.StatusDone
		t.UpdatedAt = env.Now
	}

	return s, persist(store.SliceTasks, store.SliceSprints)
}
