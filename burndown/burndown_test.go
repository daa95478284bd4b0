package burndown

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/testutil"
)

var start = time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)

func tasksFor(n, done int) ([]models.Task, []string) {
	tasks := make([]models.Task, n)
	ids := make([]string, n)

	for i := range tasks {
		ids[i] = fmt.Sprintf("t%d", i)
		tasks[i] = models.Task{ID: ids[i], Status: models.StatusTodo}

		if i < done {
			tasks[i].Status = models.StatusDone
		}
	}

	return tasks, ids
}

func sprint(days int, ids []string) models.Sprint {
	return models.Sprint{
		ID:           "s1",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, days),
		DurationDays: days,
		TaskIDs:      ids,
	}
}

func TestComputeIdealLine(t *testing.T) {
	tasks, ids := tasksFor(10, 0)

	c := Compute(sprint(10, ids), tasks, start)

	require.Len(t, c.Ideal, 11)
	assert.InDelta(t, 10, c.Ideal[0], 1e-9)
	assert.InDelta(t, 5, c.Ideal[5], 1e-9)
	assert.InDelta(t, 0, c.Ideal[10], 1e-9)
	assert.Equal(t, 10, c.TotalDays)
}

func TestComputeCounts(t *testing.T) {
	tasks, ids := tasksFor(4, 3)

	// dangling reference
	ids = append(ids, "gone")

	c := Compute(sprint(7, ids), tasks, start.AddDate(0, 0, 2))

	want := Chart{
		Total:       4,
		Completed:   3,
		Remaining:   1,
		TotalDays:   7,
		DaysElapsed: 2,
	}

	got := c
	got.Ideal = nil

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeClampsElapsed(t *testing.T) {
	tasks, ids := tasksFor(2, 0)
	sp := sprint(5, ids)

	testCases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before start", start.AddDate(0, 0, -3), 0},
		{"same day", start.Add(5 * time.Hour), 0},
		{"midway", start.AddDate(0, 0, 3), 3},
		{"after end", start.AddDate(0, 0, 30), 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compute(sp, tasks, tc.now).DaysElapsed)
		})
	}
}

func TestComputeZeroDays(t *testing.T) {
	tasks, ids := tasksFor(3, 1)

	c := Compute(sprint(0, ids), tasks, start.AddDate(0, 0, 4))

	assert.Equal(t, []float64{3}, c.Ideal)
	assert.Equal(t, 0, c.DaysElapsed)
	assert.Equal(t, 0, c.TotalDays)
	assert.Equal(t, 2, c.Remaining)
}

func TestComputeNoTasks(t *testing.T) {
	c := Compute(sprint(4, nil), nil, start)

	assert.Equal(t, []float64{0, 0, 0, 0, 0}, c.Ideal)
	assert.Equal(t, 0, c.Total)
}

func TestSprintProgress(t *testing.T) {
	tasks, ids := tasksFor(4, 1)
	sp := sprint(10, ids)

	p := SprintProgress(sp, tasks, start.AddDate(0, 0, 3))
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 4, p.Total)
	assert.InDelta(t, 25, p.Percent, 1e-9)
	assert.Equal(t, 7, p.DaysRemaining)
	assert.False(t, p.Overdue)

	p = SprintProgress(sp, tasks, start.AddDate(0, 0, 12))
	assert.True(t, p.Overdue)
	assert.Equal(t, -2, p.DaysRemaining)

	p = SprintProgress(sprint(10, nil), nil, start)
	assert.Zero(t, p.Percent)
}

func TestRender(t *testing.T) {
	tasks, ids := tasksFor(6, 2)

	c := Compute(sprint(5, ids), tasks, start.AddDate(0, 0, 1))

	out := Render(c, 60, 10, models.ThemeDark)

	assert.Contains(t, out, "Total: 6  Done: 2  Remaining: 4  Day: 1/5")
	assert.Greater(t, len(out), len(Footer(c)))
}

func TestChartOutput(t *testing.T) {
	tasks, ids := tasksFor(10, 4)

	c := Compute(sprint(5, ids), tasks, start.AddDate(0, 0, 2))

	b, err := json.MarshalIndent(c, "", "  ")
	require.NoError(t, err)

	b = append(b, '\n')
	b = append(b, Footer(c)+"\n"...)

	testutil.CompareGoldenFile(t, testutil.Snapshot{
		Golden: "chart",
		Data:   b,
	})
}
