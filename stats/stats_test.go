package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/testutil"
	"github.com/ayoisaiah/focusboard/state"
)

var now = time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

func workSession(id, taskID, title string, at time.Time) models.PomodoroSession {
	return models.PomodoroSession{
		ID:          id,
		TaskID:      taskID,
		TaskTitle:   title,
		Type:        models.Work,
		Duration:    1500,
		CompletedAt: at,
	}
}

func testState() state.State {
	data := models.DefaultAppData()

	data.Tasks = []models.Task{
		{ID: "a", Title: "A", Status: models.StatusTodo, UpdatedAt: now.Add(-5 * time.Hour), Tags: []string{"go"}, PomodoroTime: 3000},
		{ID: "b", Title: "B", Status: models.StatusInProgress, UpdatedAt: now.Add(-1 * time.Hour), Tags: []string{"go", "docs"}, PomodoroTime: 600},
		{ID: "c", Title: "C", Status: models.StatusDone, UpdatedAt: now},
		{ID: "d", Title: "D", Status: models.StatusTodo, UpdatedAt: now.Add(-3 * time.Hour), PomodoroTime: 60},
		{ID: "e", Title: "E", Status: models.StatusTodo, UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "f", Title: "F", Status: models.StatusTodo, UpdatedAt: now.Add(-9 * time.Hour)},
	}

	data.PomodoroSessions = []models.PomodoroSession{
		workSession("s1", "a", "A", now.AddDate(0, 0, -2)),
		workSession("s2", "", "", now.Add(-2*time.Hour)),
		{ID: "s3", Type: models.ShortBreak, Duration: 300, CompletedAt: now.Add(-time.Hour)},
		workSession("s4", "b", "B", now.Add(-30*time.Minute)),
		workSession("s5", "a", "A", now.AddDate(0, 0, -10)),
	}

	data.Sprints = []models.Sprint{
		{ID: "sp1", Name: "Sprint 1", Status: models.SprintCompleted},
		{ID: "sp2", Name: "Sprint 2", Status: models.SprintActive},
	}

	return state.State{AppData: data}
}

func TestCompute(t *testing.T) {
	d := Compute(testState(), now)

	assert.Equal(t, 6, d.TotalTasks)
	assert.Equal(t, 1, d.CompletedTasks)
	assert.Equal(t, 1, d.InProgressTasks)
	assert.Equal(t, 17, d.CompletionRate)
	assert.Equal(t, 2, d.TodayPomodoros)
	assert.Equal(t, int64(3000), d.TodayFocusSecs)
	assert.Equal(t, 0, d.TodayFocusHours)
	assert.Equal(t, 50, d.TodayFocusMins)
	assert.Equal(t, "Sprint 2", d.ActiveSprint)
	assert.True(t, d.HasActiveSprint)

	ids := make([]string, 0, len(d.RecentTasks))
	for _, rt := range d.RecentTasks {
		ids = append(ids, rt.ID)
	}

	assert.Equal(t, []string{"b", "e", "d", "a"}, ids)
}

func TestComputeEmpty(t *testing.T) {
	d := Compute(state.State{AppData: models.DefaultAppData()}, now)

	assert.Zero(t, d.CompletionRate)
	assert.False(t, d.HasActiveSprint)
	assert.Empty(t, d.RecentTasks)
	assert.Len(t, d.Week, historyDays)
}

func TestWeek(t *testing.T) {
	days := week(testState().PomodoroSessions, now)

	require.Len(t, days, historyDays)
	assert.Equal(t, "2025-03-04", days[0].Date)
	assert.Equal(t, "2025-03-10", days[6].Date)
	assert.Equal(t, 1, days[4].Count)
	assert.Equal(t, 2, days[6].Count)
}

func TestTagTotals(t *testing.T) {
	want := []TagTotal{
		{Tag: "go", Seconds: 3600},
		{Tag: "docs", Seconds: 600},
		{Tag: untaggedLabel, Seconds: 60},
	}

	if diff := cmp.Diff(want, tagTotals(testState().Tasks)); diff != "" {
		t.Fatalf("tagTotals() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecent(t *testing.T) {
	s := testState()

	got := Recent(s)

	ids := make([]string, 0, len(got))
	for _, sess := range got {
		ids = append(ids, sess.ID)
	}

	assert.Equal(t, []string{"s5", "s4", "s2", "s1"}, ids)
	assert.Equal(t, "B", got[1].Title)
	assert.Equal(t, freeSession, got[2].Title)
}

func TestRecentLimit(t *testing.T) {
	data := models.DefaultAppData()

	for i := range 15 {
		data.PomodoroSessions = append(
			data.PomodoroSessions,
			workSession(string(rune('a'+i)), "", "", now.Add(time.Duration(i)*time.Minute)),
		)
	}

	got := Recent(state.State{AppData: data})

	require.Len(t, got, historyLen)
	assert.Equal(t, "o", got[0].ID)
	assert.Equal(t, "f", got[historyLen-1].ID)
}

func TestRecentFallsBackToTaskTitle(t *testing.T) {
	s := testState()
	s.PomodoroSessions = []models.PomodoroSession{
		workSession("x", "d", "", now),
		workSession("y", "gone", "", now),
	}

	got := Recent(s)

	assert.Equal(t, freeSession, got[0].Title)
	assert.Equal(t, "D", got[1].Title)
}

func TestShowAndJSON(t *testing.T) {
	d := Compute(testState(), now)

	var buf bytes.Buffer

	Show(d, &buf)
	assert.Contains(t, buf.String(), "Sprint 2")

	b, err := json.MarshalIndent(d, "", "  ")
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, testutil.Snapshot{
		Golden: "dashboard",
		Data:   b,
	})
}
