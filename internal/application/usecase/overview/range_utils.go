// Package overview contains weekly and monthly overview use cases.
package overview

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// RangeIsFullyPast reports whether a range ending at rangeEnd lies strictly
// in the past relative to today. Only such ranges are eligible for caching;
// the ongoing week or month always recomputes fresh because its underlying
// data still changes intraday. Today is an explicit parameter so callers
// inject the clock instead of the builder reading wall time inline.
func RangeIsFullyPast(rangeEnd, today valueobject.Day) bool {
	return rangeEnd.Before(today)
}

// MonthIsFullyPast reports whether the given month ends before today.
func MonthIsFullyPast(year int, month time.Month, today valueobject.Day) bool {
	_, last := valueobject.MonthBounds(year, month)
	return RangeIsFullyPast(last, today)
}

// dayLabel returns the short weekday label for a day ("Mon", "Tue", ...).
func dayLabel(d valueobject.Day) string {
	return d.Weekday().String()[:3]
}

// completionIndex maps habit -> completed days, derived from a completion
// log window through the completion rule.
type completionIndex map[uuid.UUID]map[valueobject.Day]bool

func indexCompletions(entries []*entity.CompletionEntry) completionIndex {
	index := make(completionIndex)
	for _, e := range entries {
		if !e.IsComplete() {
			continue
		}
		if index[e.HabitID] == nil {
			index[e.HabitID] = make(map[valueobject.Day]bool)
		}
		index[e.HabitID][e.Date] = true
	}
	return index
}
