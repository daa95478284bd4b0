package burndown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/internal/ui"
)

const (
	minWidth  = 20
	minHeight = 6
)

// Render draws c as a bar chart: one bar per day of the ideal line,
// followed by a highlighted bar for the actual remaining count.
func Render(c Chart, width, height int, theme models.Theme) string {
	styles := ui.NewStyles(theme)

	chart := barchart.New(max(width, minWidth), max(height, minHeight))

	bars := make([]barchart.BarData, 0, len(c.Ideal)+1)

	for i, v := range c.Ideal {
		style := styles.Hint
		if i == c.DaysElapsed {
			style = styles.Main
		}

		bars = append(bars, barchart.BarData{
			Label: strconv.Itoa(i),
			Values: []barchart.BarValue{
				{Name: "ideal", Value: v, Style: style},
			},
		})
	}

	bars = append(bars, barchart.BarData{
		Label: "now",
		Values: []barchart.BarValue{
			{Name: "actual", Value: float64(c.Remaining), Style: styles.Secondary},
		},
	})

	chart.PushAll(bars)
	chart.Draw()

	var s strings.Builder

	s.WriteString(chart.View())
	s.WriteString("\n\n")
	s.WriteString(Footer(c))

	return s.String()
}

// Footer returns the one-line summary printed under the chart.
func Footer(c Chart) string {
	return fmt.Sprintf(
		"Total: %d  Done: %d  Remaining: %d  Day: %d/%d",
		c.Total,
		c.Completed,
		c.Remaining,
		c.DaysElapsed,
		c.TotalDays,
	)
}
