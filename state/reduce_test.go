package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/store"
)

var (
	created = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	later   = time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
)

func testEnv(now time.Time) Env {
	n := 0

	return Env{
		Now: now,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func seedState() State {
	data := models.DefaultAppData()

	data.Tasks = []models.Task{
		{
			ID:        "a",
			Title:     "Draft outline",
			Priority:  models.PriorityHigh,
			Status:    models.StatusTodo,
			Tags:      []string{"writing"},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:           "b",
			Title:        "Review notes",
			Priority:     models.PriorityLow,
			Status:       models.StatusInProgress,
			Tags:         []string{},
			PomodoroTime: 1500,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
		{
			ID:        "c",
			Title:     "Ship",
			Priority:  models.PriorityMedium,
			Status:    models.StatusDone,
			Tags:      []string{},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	data.Sprints = []models.Sprint{
		{
			ID:           "s1",
			Name:         "Sprint 1",
			DurationDays: 14,
			StartDate:    created,
			EndDate:      created.AddDate(0, 0, 14),
			Status:       models.SprintActive,
			TaskIDs:      []string{"a", "c", "gone"},
			CreatedAt:    created,
		},
	}

	return State{AppData: data}
}

func slicesOf(t *testing.T, effects []Effect) []store.Slice {
	t.Helper()

	if len(effects) == 0 {
		return nil
	}

	require.Len(t, effects, 1)

	p, ok := effects[0].(PersistEffect)
	require.True(t, ok, "expected a persist effect")

	return p.Slices
}

func TestAddTask(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, AddTask{Task: models.Task{
		Title:        "New",
		PomodoroTime: 999,
	}}, testEnv(later))

	require.Len(t, next.Tasks, 4)

	got := next.Tasks[3]
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, int64(0), got.PomodoroTime)
	assert.Equal(t, later, got.CreatedAt)
	assert.Equal(t, later, got.UpdatedAt)
	assert.Equal(t, models.StatusTodo, got.Status)
	assert.Equal(t, models.PriorityMedium, got.Priority)
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, []store.Slice{store.SliceTasks}, slicesOf(t, effects))

	assert.Len(t, s.Tasks, 3, "prior state must not change")
}

func TestUpdateTask(t *testing.T) {
	s := seedState()

	edited := s.Tasks[0]
	edited.Title = "Final outline"

	next, effects := Reduce(s, UpdateTask{Task: edited}, testEnv(later))

	assert.Equal(t, "Final outline", next.Tasks[0].Title)
	assert.Equal(t, created, next.Tasks[0].CreatedAt)
	assert.Equal(t, later, next.Tasks[0].UpdatedAt)
	assert.Equal(t, []store.Slice{store.SliceTasks}, slicesOf(t, effects))

	assert.Equal(t, "Draft outline", s.Tasks[0].Title)
}

func TestMoveTask(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, MoveTask{ID: "a", Status: models.StatusDone}, testEnv(later))

	assert.Equal(t, models.StatusDone, next.Tasks[0].Status)
	assert.Equal(t, later, next.Tasks[0].UpdatedAt)
	assert.NotEmpty(t, effects)
	assert.Equal(t, models.StatusTodo, s.Tasks[0].Status)
}

func TestDeleteTaskKeepsSprintReferences(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, DeleteTask{ID: "a"}, testEnv(later))

	assert.Len(t, next.Tasks, 2)
	assert.Equal(t, []string{"a", "c", "gone"}, next.Sprints[0].TaskIDs)
	assert.Equal(t, []store.Slice{store.SliceTasks}, slicesOf(t, effects))

	tasks := next.SprintTasks(next.Sprints[0])
	require.Len(t, tasks, 1)
	assert.Equal(t, "c", tasks[0].ID)
}

func TestMissingIDIsNoop(t *testing.T) {
	actions := []Action{
		UpdateTask{Task: models.Task{ID: "missing"}},
		DeleteTask{ID: "missing"},
		MoveTask{ID: "missing", Status: models.StatusDone},
		AddFocusedTime{TaskID: "missing", Seconds: 60},
		UpdateSprint{Sprint: models.Sprint{ID: "missing"}},
		DeleteSprint{ID: "missing"},
		CompleteSprint{ID: "missing"},
	}

	for _, a := range actions {
		t.Run(fmt.Sprintf("%T", a), func(t *testing.T) {
			s := seedState()

			next, effects := Reduce(s, a, testEnv(later))

			assert.Empty(t, effects)

			if diff := cmp.Diff(s, next); diff != "" {
				t.Errorf("state changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorderTasks(t *testing.T) {
	s := seedState()

	order := []models.Task{s.Tasks[2], s.Tasks[0], s.Tasks[1]}

	next, effects := Reduce(s, ReorderTasks{Tasks: order}, testEnv(later))

	assert.Equal(t, []string{"c", "a", "b"}, taskIDs(next.Tasks))
	assert.Equal(t, []store.Slice{store.SliceTasks}, slicesOf(t, effects))
}

func TestUpdateSettings(t *testing.T) {
	s := seedState()

	settings := models.PomodoroSettings{
		WorkDuration:            50,
		ShortBreakDuration:      10,
		LongBreakDuration:       30,
		SessionsBeforeLongBreak: 3,
	}

	next, effects := Reduce(s, UpdateSettings{Settings: settings}, testEnv(later))

	assert.Equal(t, settings, next.PomodoroSettings)
	assert.Equal(t, []store.Slice{store.SliceSettings}, slicesOf(t, effects))
}

func TestAddSession(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, AddSession{Session: models.PomodoroSession{
		TaskID:   "a",
		Type:     models.Work,
		Duration: 1500,
	}}, testEnv(later))

	require.Len(t, next.PomodoroSessions, 1)
	assert.Equal(t, "id-1", next.PomodoroSessions[0].ID)
	assert.Equal(t, later, next.PomodoroSessions[0].CompletedAt)
	assert.Equal(t, []store.Slice{store.SliceSessions}, slicesOf(t, effects))
	assert.Empty(t, s.PomodoroSessions)
}

func TestAddFocusedTime(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, AddFocusedTime{TaskID: "b", Seconds: 300}, testEnv(later))

	assert.Equal(t, int64(1800), next.Tasks[1].PomodoroTime)
	assert.Equal(t, created, next.Tasks[1].UpdatedAt, "focused time does not touch UpdatedAt")
	assert.Equal(t, []store.Slice{store.SliceTasks}, slicesOf(t, effects))

	next, effects = Reduce(next, AddFocusedTime{TaskID: "b", Seconds: -50}, testEnv(later))

	assert.Equal(t, int64(1800), next.Tasks[1].PomodoroTime)
	assert.Empty(t, effects)
}

func TestAddSprint(t *testing.T) {
	s := seedState()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	next, effects := Reduce(s, AddSprint{Sprint: models.Sprint{
		Name:         "Sprint 2",
		DurationDays: 7,
		StartDate:    start,
	}}, testEnv(later))

	require.Len(t, next.Sprints, 2)

	sp := next.Sprints[1]
	assert.Equal(t, "id-1", sp.ID)
	assert.Equal(t, start.AddDate(0, 0, 7), sp.EndDate)
	assert.Equal(t, later, sp.CreatedAt)
	assert.Equal(t, models.SprintPlanning, sp.Status)
	assert.Equal(t, []string{}, sp.TaskIDs)
	assert.Equal(t, []store.Slice{store.SliceSprints}, slicesOf(t, effects))
}

func TestUpdateSprintRecomputesEndDate(t *testing.T) {
	s := seedState()

	sp := s.Sprints[0]
	sp.DurationDays = 7

	next, _ := Reduce(s, UpdateSprint{Sprint: sp}, testEnv(later))

	assert.Equal(t, created.AddDate(0, 0, 7), next.Sprints[0].EndDate)
	assert.Equal(t, created.AddDate(0, 0, 14), s.Sprints[0].EndDate)
}

func TestDeleteSprint(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, DeleteSprint{ID: "s1"}, testEnv(later))

	assert.Empty(t, next.Sprints)
	assert.Len(t, next.Tasks, 3)
	assert.Equal(t, []store.Slice{store.SliceSprints}, slicesOf(t, effects))
}

func TestCompleteSprint(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, CompleteSprint{ID: "s1"}, testEnv(later))

	assert.Equal(t, models.SprintCompleted, next.Sprints[0].Status)

	a, _ := next.TaskByID("a")
	assert.Equal(t, models.StatusDone, a.Status)
	assert.Equal(t, later, a.UpdatedAt)

	// already done, so untouched
	c, _ := next.TaskByID("c")
	assert.Equal(t, created, c.UpdatedAt)

	// not in the sprint
	b, _ := next.TaskByID("b")
	assert.Equal(t, models.StatusInProgress, b.Status)

	assert.Equal(
		t,
		[]store.Slice{store.SliceTasks, store.SliceSprints},
		slicesOf(t, effects),
	)

	assert.Equal(t, models.SprintActive, s.Sprints[0].Status)
	assert.Equal(t, models.StatusTodo, s.Tasks[0].Status)
}

func TestToggleTheme(t *testing.T) {
	s := seedState()

	next, effects := Reduce(s, ToggleTheme{}, testEnv(later))
	assert.Equal(t, models.ThemeDark, next.Theme)
	assert.Equal(t, []store.Slice{store.SliceTheme}, slicesOf(t, effects))

	next, _ = Reduce(next, ToggleTheme{}, testEnv(later))
	assert.Equal(t, models.ThemeLight, next.Theme)
}

func TestSetInitialDataDoesNotPersist(t *testing.T) {
	data := seedState().AppData

	next, effects := Reduce(State{}, SetInitialData{Data: data}, testEnv(later))

	assert.Empty(t, effects)

	if diff := cmp.Diff(data, next.AppData); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))

	for i, t := range tasks {
		ids[i] = t.ID
	}

	return ids
}
