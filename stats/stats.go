// Package stats reports productivity statistics for the board.
package stats

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/state"
)

const (
	barChartChar   = "▇"
	recentTaskLen  = 4
	historyDays    = 7
	untaggedLabel  = "untagged"
	noActiveSprint = "No active sprint"
)

// DayCount is the number of work sessions completed on one day.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TagTotal is the focused time logged against tasks carrying a tag.
type TagTotal struct {
	Tag     string `json:"tag"`
	Seconds int64  `json:"seconds"`
}

// RecentTask is a compact view of a task that is not done.
type RecentTask struct {
	UpdatedAt time.Time         `json:"updatedAt"`
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Status    models.TaskStatus `json:"status"`
	Priority  models.Priority   `json:"priority"`
}

// Dashboard is the overview shown by the stats command.
type Dashboard struct {
	ActiveSprint     string       `json:"activeSprint,omitempty"`
	RecentTasks      []RecentTask `json:"recentTasks"`
	Week             []DayCount   `json:"week"`
	Tags             []TagTotal   `json:"tags"`
	TotalTasks       int          `json:"totalTasks"`
	CompletedTasks   int          `json:"completedTasks"`
	InProgressTasks  int          `json:"inProgressTasks"`
	CompletionRate   int          `json:"completionRate"`
	TodayPomodoros   int          `json:"todayPomodoros"`
	TodayFocusSecs   int64        `json:"todayFocusSeconds"`
	TodayFocusHours  int          `json:"todayFocusHours"`
	TodayFocusMins   int          `json:"todayFocusMinutes"`
	HasActiveSprint  bool         `json:"hasActiveSprint"`
}

// Compute builds the dashboard for s as seen at now.
func Compute(s state.State, now time.Time) Dashboard {
	d := Dashboard{
		TotalTasks:  len(s.Tasks),
		RecentTasks: recentTasks(s.Tasks),
		Week:        week(s.PomodoroSessions, now),
		Tags:        tagTotals(s.Tasks),
	}

	for _, t := range s.Tasks {
		switch t.Status {
		case models.StatusDone:
			d.CompletedTasks++
		case models.StatusInProgress:
			d.InProgressTasks++
		}
	}

	if d.TotalTasks > 0 {
		d.CompletionRate = timeutil.Round(
			float64(d.CompletedTasks) / float64(d.TotalTasks) * 100,
		)
	}

	today := s.TodaySessions(now)

	d.TodayPomodoros = len(today)

	for _, sess := range today {
		d.TodayFocusSecs += sess.Duration
	}

	d.TodayFocusHours = int(d.TodayFocusSecs / 3600)
	d.TodayFocusMins = int(d.TodayFocusSecs % 3600 / 60)

	if sp, ok := s.ActiveSprint(); ok {
		d.ActiveSprint = sp.Name
		d.HasActiveSprint = true
	}

	return d
}

// recentTasks returns the most recently updated tasks that are not done.
func recentTasks(tasks []models.Task) []RecentTask {
	open := make([]models.Task, 0, len(tasks))

	for _, t := range tasks {
		if t.Status != models.StatusDone {
			open = append(open, t)
		}
	}

	slices.SortStableFunc(open, func(a, b models.Task) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	result := make([]RecentTask, 0, recentTaskLen)

	for _, t := range open[:min(len(open), recentTaskLen)] {
		result = append(result, RecentTask{
			UpdatedAt: t.UpdatedAt,
			ID:        t.ID,
			Title:     t.Title,
			Status:    t.Status,
			Priority:  t.Priority,
		})
	}

	return result
}

// week counts the work sessions of the last seven days, oldest first.
func week(sessions []models.PomodoroSession, now time.Time) []DayCount {
	start := timeutil.RoundToStart(now).AddDate(0, 0, -(historyDays - 1))

	days := make([]DayCount, historyDays)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i).Format(time.DateOnly)
	}

	for _, sess := range sessions {
		if sess.Type != models.Work {
			continue
		}

		i := timeutil.DaysBetween(start, sess.CompletedAt)
		if i < 0 || i >= historyDays {
			continue
		}

		days[i].Count++
	}

	return days
}

// tagTotals sums focused time per tag, largest first. Ties are broken in
// natural order.
func tagTotals(tasks []models.Task) []TagTotal {
	totals := make(map[string]int64)

	for _, t := range tasks {
		if t.PomodoroTime == 0 {
			continue
		}

		if len(t.Tags) == 0 {
			totals[untaggedLabel] += t.PomodoroTime
			continue
		}

		for _, tag := range t.Tags {
			totals[tag] += t.PomodoroTime
		}
	}

	result := make([]TagTotal, 0, len(totals))
	for tag, secs := range totals {
		result = append(result, TagTotal{Tag: tag, Seconds: secs})
	}

	slices.SortFunc(result, func(a, b TagTotal) int {
		if c := cmp.Compare(b.Seconds, a.Seconds); c != 0 {
			return c
		}

		if natural.Less(a.Tag, b.Tag) {
			return -1
		}

		if natural.Less(b.Tag, a.Tag) {
			return 1
		}

		return 0
	})

	return result
}

func summary(d Dashboard) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%s\n", ui.Cyan("Summary")))

	s.WriteString(fmt.Sprintf(
		"Tasks: %s (%d in progress)\n",
		ui.Green(d.TotalTasks),
		d.InProgressTasks,
	))

	completed := "no tasks yet"
	if d.TotalTasks > 0 {
		completed = fmt.Sprintf("%d%% of total", d.CompletionRate)
	}

	s.WriteString(fmt.Sprintf(
		"Completed: %s (%s)\n",
		ui.Green(d.CompletedTasks),
		completed,
	))

	focused := fmt.Sprintf("%dm focused", d.TodayFocusMins)
	if d.TodayFocusHours > 0 {
		focused = fmt.Sprintf("%dh %dm focused", d.TodayFocusHours, d.TodayFocusMins)
	}

	s.WriteString(fmt.Sprintf(
		"Pomodoros today: %s (%s)\n",
		ui.Green(d.TodayPomodoros),
		focused,
	))

	sprint := noActiveSprint
	if d.HasActiveSprint {
		sprint = d.ActiveSprint
	}

	s.WriteString(fmt.Sprintf("Active sprint: %s\n", ui.Magenta(sprint)))

	return s.String()
}

func tagsView(tags []TagTotal) string {
	if len(tags) == 0 {
		return ""
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("\n%s\n", ui.Cyan("Focus by tag")))

	for _, t := range tags {
		s.WriteString(fmt.Sprintf(
			"%s: %s\n",
			t.Tag,
			ui.Green(timeutil.FocusTime(t.Seconds)),
		))
	}

	return s.String()
}

func weekChart(days []DayCount) string {
	header := fmt.Sprintf("\n%s\n", ui.Cyan("Pomodoros (last 7 days)"))

	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		date, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			continue
		}

		bars = append(bars, pterm.Bar{
			Value: d.Count,
			Label: date.Format("Mon 02"),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func recentView(tasks []RecentTask, w io.Writer) {
	if len(tasks) == 0 {
		return
	}

	ui.Section("Recent tasks", w)

	data := [][]string{{"ID", "TITLE", "STATUS", "PRIORITY"}}

	for _, t := range tasks {
		data = append(data, []string{
			t.ID,
			t.Title,
			ui.Status(t.Status),
			ui.Priority(t.Priority),
		})
	}

	ui.PrintTable(data, w)
}

// Show prints the dashboard to w.
func Show(d Dashboard, w io.Writer) {
	output := fmt.Sprint(
		summary(d),
		tagsView(d.Tags),
		weekChart(d.Week),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))

	recentView(d.RecentTasks, w)
}
