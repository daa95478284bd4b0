package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
	"github.com/ayoisaiah/focusboard/internal/ui"
	"github.com/ayoisaiah/focusboard/state"
)

const (
	historyLen        = 10
	freeSession       = "Free session"
	noSessionsMsg     = "No focus sessions recorded yet"
	sessionTimeLayout = "January 02, 2006 03:04 PM"
)

// Session is a completed work session as shown in the history.
type Session struct {
	CompletedAt time.Time `json:"completedAt"`
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId,omitempty"`
	Title       string    `json:"title"`
	Duration    int64     `json:"duration"`
}

// Recent returns the last ten work sessions, newest first. Sessions without
// a task are titled "Free session".
func Recent(s state.State) []Session {
	var work []models.PomodoroSession

	for _, sess := range s.PomodoroSessions {
		if sess.Type == models.Work {
			work = append(work, sess)
		}
	}

	work = work[max(len(work)-historyLen, 0):]

	result := make([]Session, 0, len(work))

	for i := len(work) - 1; i >= 0; i-- {
		sess := work[i]

		result = append(result, Session{
			CompletedAt: sess.CompletedAt,
			ID:          sess.ID,
			TaskID:      sess.TaskID,
			Title:       sessionTitle(s, sess),
			Duration:    sess.Duration,
		})
	}

	return result
}

// sessionTitle prefers the title captured when the session ended and falls
// back to the current task title.
func sessionTitle(s state.State, sess models.PomodoroSession) string {
	if sess.TaskID == "" {
		return freeSession
	}

	if sess.TaskTitle != "" {
		return sess.TaskTitle
	}

	if t, ok := s.TaskByID(sess.TaskID); ok {
		return t.Title
	}

	return freeSession
}

// List prints the sessions as a table.
func List(sessions []Session, w io.Writer) {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	data := [][]string{{"#", "COMPLETED", "TASK", "DURATION"}}

	for i, sess := range sessions {
		title := sess.Title
		if sess.TaskID == "" {
			title = ui.Gray(title)
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			sess.CompletedAt.Local().Format(sessionTimeLayout),
			title,
			timeutil.FocusTime(sess.Duration),
		})
	}

	ui.PrintTable(data, w)
}
