package timer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// handleTick advances the engine by one second and schedules the next tick
// once any phase change has been resolved. The chain ends when the engine
// stops.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.tag != m.tickTag {
		return m, nil
	}

	m.engine.Tick()

	if !m.engine.Status().Running {
		return m, nil
	}

	return m, m.tick()
}

func (m *Model) handleTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.taskForm.Update(msg)

	f, ok := form.(*huh.Form)
	if !ok {
		return m, cmd
	}

	m.taskForm = f

	switch m.taskForm.State {
	case huh.StateCompleted:
		m.selectTask(m.formTaskID)
		m.taskForm = nil

		return m, nil
	case huh.StateAborted:
		m.taskForm = nil

		return m, nil
	}

	return m, cmd
}

// selectTask attaches the timer to the task with id. Unknown ids fall back
// to a free session.
func (m *Model) selectTask(id string) {
	t, ok := m.store.State().TaskByID(id)
	if !ok {
		m.engine.DeselectTask()
		return
	}

	m.engine.SelectTask(t.ID, t.Title)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		m.engine.Toggle()

		return m, m.restartTicks()

	case key.Matches(msg, defaultKeymap.skip):
		m.engine.Skip()

		return m, m.restartTicks()

	case key.Matches(msg, defaultKeymap.reset):
		m.engine.Reset()

		return m, m.restartTicks()

	case key.Matches(msg, defaultKeymap.deselect):
		m.engine.DeselectTask()

	case key.Matches(msg, defaultKeymap.selectTask):
		m.taskForm = m.newTaskForm()

		return m, m.taskForm.Init()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	if m.taskForm != nil {
		return m.handleTaskForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}
