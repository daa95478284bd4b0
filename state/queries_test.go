package state

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusboard/internal/models"
)

func TestColumns(t *testing.T) {
	s := seedState()
	s.Tasks = append(s.Tasks, models.Task{ID: "d", Status: models.StatusTodo})

	cols := s.Columns()

	assert.Len(t, cols, 3)
	assert.Equal(t, models.StatusTodo, cols[0].Status)
	assert.Equal(t, []string{"a", "d"}, taskIDs(cols[0].Tasks))
	assert.Equal(t, []string{"b"}, taskIDs(cols[1].Tasks))
	assert.Equal(t, []string{"c"}, taskIDs(cols[2].Tasks))
}

func TestColumnsEmptyBoard(t *testing.T) {
	s := State{AppData: models.DefaultAppData()}

	for _, col := range s.Columns() {
		assert.NotNil(t, col.Tasks)
		assert.Empty(t, col.Tasks)
	}
}

func TestActiveSprint(t *testing.T) {
	s := seedState()

	sp, ok := s.ActiveSprint()
	assert.True(t, ok)
	assert.Equal(t, "s1", sp.ID)

	s.Sprints[0].Status = models.SprintPlanning

	_, ok = s.ActiveSprint()
	assert.False(t, ok)
}

func TestTodaySessions(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, loc)

	s := State{AppData: models.DefaultAppData()}
	s.PomodoroSessions = []models.PomodoroSession{
		{ID: "1", Type: models.Work, CompletedAt: time.Date(2025, 3, 5, 0, 30, 0, 0, loc)},
		{ID: "2", Type: models.ShortBreak, CompletedAt: time.Date(2025, 3, 5, 9, 0, 0, 0, loc)},
		{ID: "3", Type: models.Work, CompletedAt: time.Date(2025, 3, 4, 23, 59, 0, 0, loc)},
		// 23:30 UTC on the 4th is 00:30 on the 5th in loc
		{ID: "4", Type: models.Work, CompletedAt: time.Date(2025, 3, 4, 23, 30, 0, 0, time.UTC)},
	}

	today := s.TodaySessions(now)

	ids := make([]string, len(today))
	for i, sess := range today {
		ids[i] = sess.ID
	}

	assert.Equal(t, []string{"1", "4"}, ids)
}

func TestTaskByID(t *testing.T) {
	s := seedState()

	task, ok := s.TaskByID("b")
	assert.True(t, ok)
	assert.Equal(t, "Review notes", task.Title)

	_, ok = s.TaskByID("nope")
	assert.False(t, ok)
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1740819600000)

	id := NewID(now)

	assert.Regexp(t, regexp.MustCompile(`^1740819600000-[0-9a-z]{9}$`), id)
	assert.NotEqual(t, id, NewID(now))
}
