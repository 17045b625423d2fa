// Package streak contains streak computation and listing use cases.
package streak

import (
	"math"
	"sort"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// Calculate derives streak statistics from one habit's completion log as of
// the given reference date (inclusive). It is a pure function of the log:
// invoked per update or in a nightly batch, the same log yields the same
// result, which is what makes snapshot retries and re-snapshotting after
// late corrections safe.
func Calculate(log []*entity.CompletionEntry, asOf valueobject.Day) entity.StreakResult {
	completed := make(map[valueobject.Day]bool)
	dates := make([]valueobject.Day, 0, len(log))
	for _, e := range log {
		if e.Date.After(asOf) || !e.IsComplete() {
			continue
		}
		if !completed[e.Date] {
			completed[e.Date] = true
			dates = append(dates, e.Date)
		}
	}

	if len(dates) == 0 {
		return entity.StreakResult{}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	first := dates[0]
	last := dates[len(dates)-1]

	// Current streak: walk backward day by day from the as-of date and stop
	// at the first non-completed day. Zero when the as-of date itself has no
	// completion.
	current := 0
	for d := asOf; completed[d]; d = d.AddDays(-1) {
		current++
	}

	// Longest streak: scan consecutive completed dates; a gap of exactly one
	// day extends the run, anything else resets it.
	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if valueobject.DaysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	total := len(dates)
	span := valueobject.DaysBetween(first, last) + 1
	rate := int(math.Round(float64(total) / float64(span) * 100))

	end := last
	if current > 0 {
		end = asOf
	}

	return entity.StreakResult{
		CurrentStreak:     current,
		LongestStreak:     longest,
		StartDate:         first,
		EndDate:           end,
		LastCompletedDate: last,
		TotalCompletions:  total,
		CompletionRate:    rate,
	}
}
