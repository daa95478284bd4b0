package state

import (
	"time"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
)

// Column is one lane of the board.
type Column struct {
	Status models.TaskStatus
	Tasks  []models.Task
}

// Columns groups tasks by status in board order. Tasks keep their list
// order within a column.
func (s State) Columns() []Column {
	cols := make([]Column, len(models.TaskStatuses))

	for i, status := range models.TaskStatuses {
		cols[i] = Column{Status: status, Tasks: []models.Task{}}

		for _, t := range s.Tasks {
			if t.Status == status {
				cols[i].Tasks = append(cols[i].Tasks, t)
			}
		}
	}

	return cols
}

func (s State) TaskByID(id string) (models.Task, bool) {
	i := s.taskIndex(id)
	if i < 0 {
		return models.Task{}, false
	}

	return s.Tasks[i], true
}

func (s State) SprintByID(id string) (models.Sprint, bool) {
	i := s.sprintIndex(id)
	if i < 0 {
		return models.Sprint{}, false
	}

	return s.Sprints[i], true
}

// ActiveSprint returns the first sprint whose status is active.
func (s State) ActiveSprint() (models.Sprint, bool) {
	for _, sp := range s.Sprints {
		if sp.Status == models.SprintActive {
			return sp, true
		}
	}

	return models.Sprint{}, false
}

// TodaySessions returns the work sessions completed on the calendar day of
// now, in now's location.
func (s State) TodaySessions(now time.Time) []models.PomodoroSession {
	var today []models.PomodoroSession

	for _, sess := range s.PomodoroSessions {
		if sess.Type == models.Work && timeutil.SameDay(sess.CompletedAt, now) {
			today = append(today, sess)
		}
	}

	return today
}

// SprintTasks returns the tasks referenced by sp that still exist, in the
// sprint's order.
func (s State) SprintTasks(sp models.Sprint) []models.Task {
	tasks := make([]models.Task, 0, len(sp.TaskIDs))

	for _, id := range sp.TaskIDs {
		if t, ok := s.TaskByID(id); ok {
			tasks = append(tasks, t)
		}
	}

	return tasks
}
