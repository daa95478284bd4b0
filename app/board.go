package app

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/state"
)

const (
	dateLayout     = "Jan 02, 2006"
	dateTimeLayout = "Jan 02, 2006 03:04 PM"
	noTasksMsg     = "No tasks found"
)

var columnTitles = map[models.TaskStatus]string{
	models.StatusTodo:       "To do",
	models.StatusInProgress: "In progress",
	models.StatusDone:       "Done",
}

// sortedTags returns a copy of tags in natural order.
func sortedTags(tags []string) []string {
	sorted := slices.Clone(tags)
	slices.SortFunc(sorted, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return sorted
}

func formatDeadline(t models.Task) string {
	if t.Deadline == nil {
		return ""
	}

	return t.Deadline.Local().Format(dateLayout)
}

func taskRow(t models.Task) []string {
	return []string{
		t.ID,
		t.Title,
		ui.Status(t.Status),
		ui.Priority(t.Priority),
		strings.Join(sortedTags(t.Tags), " · "),
		formatDeadline(t),
		timeutil.FocusTime(t.PomodoroTime),
	}
}

func printTasksTable(w io.Writer, tasks []models.Task) {
	data := [][]string{
		{"ID", "TITLE", "STATUS", "PRIORITY", "TAGS", "DEADLINE", "FOCUS"},
	}

	for _, t := range tasks {
		data = append(data, taskRow(t))
	}

	ui.PrintTable(data, w)
}

// printBoard prints one table per column in board order.
func printBoard(w io.Writer, s state.State) {
	for _, col := range s.Columns() {
		ui.Section(fmt.Sprintf("%s (%d)", columnTitles[col.Status], len(col.Tasks)), w)

		if len(col.Tasks) == 0 {
			fmt.Fprintln(w, ui.Gray(noTasksMsg))
			continue
		}

		data := [][]string{{"ID", "TITLE", "PRIORITY", "TAGS", "DEADLINE"}}

		for _, t := range col.Tasks {
			data = append(data, []string{
				t.ID,
				t.Title,
				ui.Priority(t.Priority),
				strings.Join(sortedTags(t.Tags), " · "),
				formatDeadline(t),
			})
		}

		ui.PrintTable(data, w)
	}
}

// printTask prints every field of t.
func printTask(w io.Writer, t models.Task) {
	ui.Section(t.Title, w)

	data := [][]string{
		{"FIELD", "VALUE"},
		{"ID", t.ID},
		{"Status", ui.Status(t.Status)},
		{"Priority", ui.Priority(t.Priority)},
		{"Tags", strings.Join(sortedTags(t.Tags), ", ")},
		{"Deadline", formatDeadline(t)},
		{"Focused", timeutil.FocusTime(t.PomodoroTime)},
		{"Created", t.CreatedAt.Local().Format(dateTimeLayout)},
		{"Updated", t.UpdatedAt.Local().Format(dateTimeLayout)},
	}

	ui.PrintTable(data, w)

	if t.Description != "" {
		fmt.Fprintln(w, t.Description)
	}
}
