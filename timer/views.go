package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/timeutil"
)

var phaseLabels = map[models.Phase]string{
	models.Work:       "WORK",
	models.ShortBreak: "SHORT BREAK",
	models.LongBreak:  "LONG BREAK",
}

func (m *Model) headerView(st Status) string {
	var s strings.Builder

	s.WriteString(m.styles.Phase(st.Phase).Render(phaseLabels[st.Phase]))

	timeFormat := "03:04:05 PM"
	if m.twentyFourHour {
		timeFormat = "15:04:05"
	}

	if st.Running {
		end := m.now().Add(time.Duration(st.Remaining) * time.Second)
		s.WriteString(m.styles.Hint.Render("until " + end.Format(timeFormat)))
	} else {
		s.WriteString(m.styles.Paused.Render("[Paused]"))
	}

	if st.Phase == models.Work {
		interval := m.engine.longBreakInterval()

		s.WriteString(m.styles.Hint.Render(
			fmt.Sprintf(" (%d/%d)", st.SessionsCompleted%interval+1, interval),
		))
	}

	return s.String()
}

func (m *Model) taskView(st Status) string {
	title := "Free session"
	if st.SelectedTaskID != "" {
		title = st.SelectedTaskTitle
	}

	today := len(m.store.State().TodaySessions(m.now()))

	return m.styles.Secondary.Render(title) +
		m.styles.Hint.Render(fmt.Sprintf("  %d pomodoros today", today))
}

func (m *Model) timerView() string {
	st := m.engine.Status()

	var s strings.Builder

	s.WriteString(m.headerView(st))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.Clock(st.Remaining)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.engine.Progress() / 100))
	s.WriteString("\n\n")
	s.WriteString(m.taskView(st))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView(defaultKeymap.ShortHelp()))

	return s.String()
}

func (m *Model) View() string {
	view := m.timerView()

	if m.taskForm != nil {
		view += "\n\n" + m.taskForm.View()
	}

	return m.styles.Base.Render(view)
}
