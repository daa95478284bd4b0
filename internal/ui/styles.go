package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusboard/internal/models"
)

type palette struct {
	primary lipgloss.Color
	work    lipgloss.Color
	short   lipgloss.Color
	long    lipgloss.Color
	muted   lipgloss.Color
	fg      lipgloss.Color
	warning lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("#4F46E5"),
		work:    lipgloss.Color("#15803D"),
		short:   lipgloss.Color("#0E7490"),
		long:    lipgloss.Color("#7E22CE"),
		muted:   lipgloss.Color("#6B7280"),
		fg:      lipgloss.Color("#111827"),
		warning: lipgloss.Color("#B45309"),
	}

	darkPalette = palette{
		primary: lipgloss.Color("#7AA2F7"),
		work:    lipgloss.Color("#B0DB43"),
		short:   lipgloss.Color("#12EAEA"),
		long:    lipgloss.Color("#C492B1"),
		muted:   lipgloss.Color("#666666"),
		fg:      lipgloss.Color("#C0CAF5"),
		warning: lipgloss.Color("#F39C12"),
	}
)

// Styles groups the lipgloss styles used by the terminal views.
type Styles struct {
	Base       lipgloss.Style
	Main       lipgloss.Style
	Secondary  lipgloss.Style
	Hint       lipgloss.Style
	Paused     lipgloss.Style
	Work       lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	Accent     lipgloss.Color
}

// NewStyles returns the style set for the given theme.
func NewStyles(theme models.Theme) Styles {
	p := lightPalette
	if theme.Dark() {
		p = darkPalette
	}

	label := lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginRight(1)

	return Styles{
		Base:       lipgloss.NewStyle().Padding(1, 1),
		Main:       lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		Secondary:  lipgloss.NewStyle().Foreground(p.primary),
		Hint:       lipgloss.NewStyle().Foreground(p.muted),
		Paused:     lipgloss.NewStyle().Bold(true).Foreground(p.warning),
		Work:       label.Foreground(lipgloss.Color("#000000")).Background(p.work),
		ShortBreak: label.Foreground(lipgloss.Color("#000000")).Background(p.short),
		LongBreak:  label.Foreground(lipgloss.Color("#000000")).Background(p.long),
		Accent:     p.primary,
	}
}

// Phase returns the label style for a timer phase.
func (s Styles) Phase(phase models.Phase) lipgloss.Style {
	switch phase {
	case models.ShortBreak:
		return s.ShortBreak
	case models.LongBreak:
		return s.LongBreak
	default:
		return s.Work
	}
}
