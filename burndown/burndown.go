// Package burndown derives sprint burndown data and renders it as a
// terminal chart.
package burndown

import (
	"time"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
)

// Chart is the burndown of a single sprint.
type Chart struct {
	// Ideal holds the ideal remaining task count for each day from 0 to
	// TotalDays inclusive.
	Ideal       []float64
	Total       int
	Completed   int
	Remaining   int
	TotalDays   int
	DaysElapsed int
}

// Progress holds the numbers shown on a sprint card.
type Progress struct {
	Completed     int
	Total         int
	Percent       float64
	DaysRemaining int
	Overdue       bool
}

// sprintTasks returns the tasks referenced by sp that still exist.
func sprintTasks(sp models.Sprint, tasks []models.Task) []models.Task {
	ids := make(map[string]struct{}, len(sp.TaskIDs))
	for _, id := range sp.TaskIDs {
		ids[id] = struct{}{}
	}

	var result []models.Task

	for _, t := range tasks {
		if _, ok := ids[t.ID]; ok {
			result = append(result, t)
		}
	}

	return result
}

func countDone(tasks []models.Task) int {
	var n int

	for _, t := range tasks {
		if t.Status == models.StatusDone {
			n++
		}
	}

	return n
}

// Compute builds the burndown for sp at time now. Day boundaries are taken
// in now's location.
func Compute(sp models.Sprint, tasks []models.Task, now time.Time) Chart {
	refs := sprintTasks(sp, tasks)

	c := Chart{
		Total:     len(refs),
		Completed: countDone(refs),
	}

	c.Remaining = c.Total - c.Completed

	start := sp.StartDate.In(now.Location())

	c.TotalDays = max(timeutil.DaysBetween(start, sp.EndDate), 0)

	if c.TotalDays == 0 {
		c.Ideal = []float64{float64(c.Total)}
		return c
	}

	c.DaysElapsed = min(max(timeutil.DaysBetween(start, now), 0), c.TotalDays)

	c.Ideal = make([]float64, c.TotalDays+1)

	perDay := float64(c.Total) / float64(c.TotalDays)

	for i := range c.Ideal {
		c.Ideal[i] = max(0, float64(c.Total)-perDay*float64(i))
	}

	return c
}

// SprintProgress summarises how far sp has come at time now.
func SprintProgress(sp models.Sprint, tasks []models.Task, now time.Time) Progress {
	refs := sprintTasks(sp, tasks)

	p := Progress{
		Completed: countDone(refs),
		Total:     len(refs),
		// whole days, truncated towards zero
		DaysRemaining: int(sp.EndDate.Sub(now).Hours() / 24),
		Overdue:       now.After(sp.EndDate),
	}

	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}

	return p
}
