// Package valueobject contains domain value objects and their logic.
package valueobject

import (
	"time"
)

// DayLayout is the canonical date-string layout used throughout the system.
const DayLayout = "2006-01-02"

// Day is a calendar day expressed as a YYYY-MM-DD string. Days are produced
// from local calendar time and compared as strings; the layout makes
// lexicographic order equal to chronological order, so no timezone
// conversion is ever applied to a Day once formed.
type Day string

// ParseDay validates a date string and returns it as a Day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(DayLayout, s); err != nil {
		return "", err
	}
	return Day(s), nil
}

// DayOf returns the calendar day containing t, in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// Time returns the day as a time.Time at midnight UTC. The value is only
// used for calendar arithmetic between two Days, never shown to callers.
func (d Day) Time() time.Time {
	t, _ := time.Parse(DayLayout, string(d))
	return t
}

// String returns the day in YYYY-MM-DD form.
func (d Day) String() string {
	return string(d)
}

// IsZero reports whether the day is unset.
func (d Day) IsZero() bool {
	return d == ""
}

// AddDays returns the day n calendar days after d (before, if n is negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d < other
}

// After reports whether d is strictly later than other.
func (d Day) After(other Day) bool {
	return d > other
}

// Weekday returns the day of the week for d.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysBetween returns the number of calendar days from a to b. The result
// is negative when b is earlier than a.
func DaysBetween(a, b Day) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// WeekStartOf returns the Monday of the week containing d.
func WeekStartOf(d Day) Day {
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return d.AddDays(-(weekday - 1))
}

// MonthOf returns the year and month containing d.
func MonthOf(d Day) (int, time.Month) {
	t := d.Time()
	return t.Year(), t.Month()
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (Day, Day) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DayOf(first), DayOf(last)
}

// DaysIn returns every day from start to end inclusive, in order.
func DaysIn(start, end Day) []Day {
	if end.Before(start) {
		return nil
	}
	days := make([]Day, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
