// Package models defines the records persisted by focusboard.
package models

import (
	"strings"
	"time"

	"github.com/ayoisaiah/focusboard/internal/apperr"
)

type (
	Priority     string
	TaskStatus   string
	SprintStatus string
	Phase        string
	Theme        string
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

const (
	Work       Phase = "work"
	ShortBreak Phase = "short-break"
	LongBreak  Phase = "long-break"
)

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone}

var (
	errUnknownPriority = &apperr.Error{
		Message: "unknown priority %q (must be low, medium, or high)",
	}

	errUnknownTaskStatus = &apperr.Error{
		Message: "unknown task status %q (must be todo, in-progress, or done)",
	}

	errUnknownSprintStatus = &apperr.Error{
		Message: "unknown sprint status %q (must be planning, active, or completed)",
	}
)

// Task is a card on the board.
type Task struct {
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	Tags        []string   `json:"tags"`
	// PomodoroTime is the focused time in seconds.
	PomodoroTime int64 `json:"pomodoroTime"`
}

// Retrospective holds the notes captured when a sprint is reviewed.
type Retrospective struct {
	WhatWorked    string `json:"whatWorked"`
	WhatToImprove string `json:"whatToImprove"`
	ActionItems   string `json:"actionItems"`
}

// Sprint is a bounded window of work referencing tasks by id. The
// references are weak: referenced tasks may no longer exist.
type Sprint struct {
	StartDate     time.Time      `json:"startDate"`
	EndDate       time.Time      `json:"endDate"`
	CreatedAt     time.Time      `json:"createdAt"`
	Retrospective *Retrospective `json:"retrospective,omitempty"`
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Goal          string         `json:"goal"`
	Status        SprintStatus   `json:"status"`
	TaskIDs       []string       `json:"taskIds"`
	DurationDays  int            `json:"durationDays"`
}

// PomodoroSettings holds the timer durations in minutes.
type PomodoroSettings struct {
	WorkDuration            int  `json:"workDuration"`
	ShortBreakDuration      int  `json:"shortBreakDuration"`
	LongBreakDuration       int  `json:"longBreakDuration"`
	SessionsBeforeLongBreak int  `json:"sessionsBeforeLongBreak"`
	SoundEnabled            bool `json:"soundEnabled"`
}

// PomodoroSession is an entry in the append-only session log.
type PomodoroSession struct {
	CompletedAt time.Time `json:"completedAt"`
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId,omitempty"`
	TaskTitle   string    `json:"taskTitle,omitempty"`
	Type        Phase     `json:"type"`
	// Duration is in seconds.
	Duration int64 `json:"duration"`
}

// AppData is the persisted document.
type AppData struct {
	Theme            Theme             `json:"theme"`
	Tasks            []Task            `json:"tasks"`
	PomodoroSessions []PomodoroSession `json:"pomodoroSessions"`
	Sprints          []Sprint          `json:"sprints"`
	PomodoroSettings PomodoroSettings  `json:"pomodoroSettings"`
}

// DefaultSettings returns the stock pomodoro settings.
func DefaultSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration:            25,
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		SessionsBeforeLongBreak: 4,
		SoundEnabled:            true,
	}
}

// DefaultAppData returns an empty document with default settings.
func DefaultAppData() AppData {
	return AppData{
		Tasks:            []Task{},
		PomodoroSettings: DefaultSettings(),
		PomodoroSessions: []PomodoroSession{},
		Sprints:          []Sprint{},
		Theme:            ThemeLight,
	}
}

// Duration returns the configured length of phase p in seconds.
func (s PomodoroSettings) Duration(p Phase) int {
	switch p {
	case ShortBreak:
		return s.ShortBreakDuration * 60
	case LongBreak:
		return s.LongBreakDuration * 60
	default:
		return s.WorkDuration * 60
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Dark reports whether t is the dark theme.
func (t Theme) Dark() bool {
	return t == ThemeDark
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func (s TaskStatus) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

func (s SprintStatus) Valid() bool {
	return s == SprintPlanning || s == SprintActive || s == SprintCompleted
}

// ParsePriority converts user input to a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errUnknownPriority.Fmt(s)
	}

	return p, nil
}

// ParseTaskStatus converts user input to a TaskStatus. The forms "doing" and
// "in_progress" are accepted for convenience.
func ParseTaskStatus(s string) (TaskStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case "doing", "in_progress", "inprogress":
		normalized = string(StatusInProgress)
	}

	status := TaskStatus(normalized)
	if !status.Valid() {
		return "", errUnknownTaskStatus.Fmt(s)
	}

	return status, nil
}

// ParseSprintStatus converts user input to a SprintStatus.
func ParseSprintStatus(s string) (SprintStatus, error) {
	status := SprintStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", errUnknownSprintStatus.Fmt(s)
	}

	return status, nil
}

// HasTask reports whether the sprint references the task id.
func (s *Sprint) HasTask(id string) bool {
	for _, v := range s.TaskIDs {
		if v == id {
			return true
		}
	}

	return false
}

// ComputeEndDate sets EndDate from StartDate and DurationDays.
func (s *Sprint) ComputeEndDate() {
	s.EndDate = s.StartDate.AddDate(0, 0, s.DurationDays)
}
