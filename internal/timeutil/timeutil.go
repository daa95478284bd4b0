// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/focusboard/internal/apperr"
)

const (
	minutesInAnHour  = 60
	secondsInAMinute = 60
	hoursInADay      = 24
)

var errParsingDate = &apperr.Error{
	Message: "unable to understand the date %q (try '2025-03-01', 'tomorrow' or 'in 2 weeks')",
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// Clock formats seconds as "MM:SS".
func Clock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FocusTime formats a seconds value as "1h 5m" or "5m".
func FocusTime(secs int64) string {
	hrs, mins := MinsToHoursAndMins(int(secs / secondsInAMinute))
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}

	return fmt.Sprintf("%dm", mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// SameDay reports whether a and b fall on the same calendar day in the
// location of b.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())

	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween returns the number of whole calendar days from the start of
// from's day to the start of to's day. The result is negative when to
// precedes from.
func DaysBetween(from, to time.Time) int {
	to = to.In(from.Location())

	start := RoundToStart(from)
	end := RoundToStart(to)

	// Rounding absorbs DST shifts of up to an hour either way.
	return Round(end.Sub(start).Hours() / hoursInADay)
}

// FromStr parses a human-friendly date such as "2025-03-01", "tomorrow" or
// "next friday" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errParsingDate.Fmt(s)
	}

	for _, layout := range []string{time.DateOnly, time.DateTime, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errParsingDate.Fmt(s)
	}

	return dt.Time, nil
}
