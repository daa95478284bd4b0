package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusboard/internal/models"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Gray(a any) string {
	return pterm.Gray(a)
}

// Priority colours a task priority label.
func Priority(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return Red(p)
	case models.PriorityMedium:
		return Yellow(p)
	default:
		return Green(p)
	}
}

// Status colours a task or sprint status label.
func Status[T models.TaskStatus | models.SprintStatus](s T) string {
	switch string(s) {
	case string(models.StatusDone), string(models.SprintCompleted):
		return Green(s)
	case string(models.StatusInProgress), string(models.SprintActive):
		return Cyan(s)
	default:
		return Magenta(s)
	}
}
