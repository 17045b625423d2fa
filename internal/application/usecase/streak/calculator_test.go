package streak

import (
	"testing"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

func completedOn(dates ...valueobject.Day) []*entity.CompletionEntry {
	userID := uuid.New()
	habitID := uuid.New()
	entries := make([]*entity.CompletionEntry, 0, len(dates))
	for _, d := range dates {
		e := entity.NewCompletionEntry(userID, habitID, d)
		e.SetPeriod(entity.TimePeriodEvening, 100)
		entries = append(entries, e)
	}
	return entries
}

func TestCalculateEmptyLog(t *testing.T) {
	result := Calculate(nil, "2024-01-07")
	if result.CurrentStreak != 0 || result.LongestStreak != 0 || result.TotalCompletions != 0 {
		t.Errorf("empty log produced non-zero result: %+v", result)
	}
	if !result.StartDate.IsZero() || !result.LastCompletedDate.IsZero() {
		t.Errorf("empty log produced dates: %+v", result)
	}
}

func TestCalculateRunWithGap(t *testing.T) {
	// Completed 01-01..01-03, missed 01-04, completed 01-05..01-07.
	log := completedOn(
		"2024-01-01", "2024-01-02", "2024-01-03",
		"2024-01-05", "2024-01-06", "2024-01-07",
	)

	result := Calculate(log, "2024-01-07")

	if result.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", result.CurrentStreak)
	}
	if result.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", result.LongestStreak)
	}
	if result.TotalCompletions != 6 {
		t.Errorf("TotalCompletions = %d, want 6", result.TotalCompletions)
	}
	if result.StartDate != "2024-01-01" {
		t.Errorf("StartDate = %s, want 2024-01-01", result.StartDate)
	}
	if result.EndDate != "2024-01-07" {
		t.Errorf("EndDate = %s, want 2024-01-07", result.EndDate)
	}
	if result.LastCompletedDate != "2024-01-07" {
		t.Errorf("LastCompletedDate = %s, want 2024-01-07", result.LastCompletedDate)
	}
	// 6 completions over a 7-day span.
	if result.CompletionRate != 86 {
		t.Errorf("CompletionRate = %d, want 86", result.CompletionRate)
	}
}

func TestCalculateCurrentStreakZeroWhenAsOfDayIncomplete(t *testing.T) {
	log := completedOn("2024-01-01", "2024-01-02", "2024-01-03")

	result := Calculate(log, "2024-01-05")

	if result.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", result.CurrentStreak)
	}
	if result.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", result.LongestStreak)
	}
	// Streak is not current, so the end date is the last completion.
	if result.EndDate != "2024-01-03" {
		t.Errorf("EndDate = %s, want 2024-01-03", result.EndDate)
	}
}

func TestCalculateIgnoresEntriesAfterAsOfDate(t *testing.T) {
	log := completedOn("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10")

	result := Calculate(log, "2024-01-03")

	if result.TotalCompletions != 3 {
		t.Errorf("TotalCompletions = %d, want 3", result.TotalCompletions)
	}
	if result.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", result.CurrentStreak)
	}
	if result.LastCompletedDate != "2024-01-03" {
		t.Errorf("LastCompletedDate = %s, want 2024-01-03", result.LastCompletedDate)
	}
}

func TestCalculateIgnoresIncompleteEntries(t *testing.T) {
	log := completedOn("2024-01-01", "2024-01-02")
	partial := entity.NewCompletionEntry(log[0].UserID, log[0].HabitID, "2024-01-03")
	partial.SetPeriod(entity.TimePeriodMorning, 80)
	log = append(log, partial)

	result := Calculate(log, "2024-01-03")

	if result.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0 when the as-of day only has partial progress", result.CurrentStreak)
	}
	if result.TotalCompletions != 2 {
		t.Errorf("TotalCompletions = %d, want 2", result.TotalCompletions)
	}
}

func TestCalculateSingleCompletion(t *testing.T) {
	log := completedOn("2024-01-05")

	result := Calculate(log, "2024-01-05")

	if result.CurrentStreak != 1 || result.LongestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", result.CurrentStreak, result.LongestStreak)
	}
	if result.CompletionRate != 100 {
		t.Errorf("CompletionRate = %d, want 100", result.CompletionRate)
	}
}

func TestCalculateCrossMonthStreak(t *testing.T) {
	log := completedOn("2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02")

	result := Calculate(log, "2024-02-02")

	if result.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4 across the month boundary", result.CurrentStreak)
	}
}

func TestCalculateLongestAtLeastCurrent(t *testing.T) {
	cases := [][]valueobject.Day{
		{"2024-01-01"},
		{"2024-01-01", "2024-01-02", "2024-01-04"},
		{"2024-01-01", "2024-01-03", "2024-01-04", "2024-01-05"},
		{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06"},
	}

	for _, dates := range cases {
		result := Calculate(completedOn(dates...), dates[len(dates)-1])
		if result.LongestStreak < result.CurrentStreak {
			t.Errorf("dates %v: longest %d < current %d", dates, result.LongestStreak, result.CurrentStreak)
		}
	}
}

// Live and batch invocations must agree: the result only depends on the log
// and the as-of date.
func TestCalculateIsDeterministic(t *testing.T) {
	log := completedOn("2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06", "2024-01-07")

	first := Calculate(log, "2024-01-07")
	second := Calculate(log, "2024-01-07")

	if first != second {
		t.Errorf("repeated calculation diverged: %+v vs %+v", first, second)
	}
}
