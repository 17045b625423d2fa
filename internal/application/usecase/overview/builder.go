// Package overview contains weekly and monthly overview use cases.
package overview

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// maxTopHabits bounds the per-range habit ranking.
const maxTopHabits = 5

// buildDailyProgress computes the per-day completion percentages for the
// habit set in scope: round(completedHabits / totalHabits * 100), zero when
// the scope is empty.
func buildDailyProgress(habits []*entity.Habit, completed completionIndex, days []valueobject.Day, today valueobject.Day) []entity.DailyProgress {
	progress := make([]entity.DailyProgress, 0, len(days))
	total := len(habits)

	for _, day := range days {
		done := 0
		for _, habit := range habits {
			if completed[habit.ID][day] {
				done++
			}
		}

		completion := 0
		if total > 0 {
			completion = int(math.Round(float64(done) / float64(total) * 100))
		}

		progress = append(progress, entity.DailyProgress{
			Date:       day,
			DayLabel:   dayLabel(day),
			Completion: completion,
			IsToday:    day == today,
		})
	}

	return progress
}

// averageCompletion is the mean of the per-day completion percentages,
// rounded to one decimal place.
func averageCompletion(days []entity.DailyProgress) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := int64(0)
	for _, d := range days {
		sum += int64(d.Completion)
	}
	avg, _ := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(days)))).
		Round(1).
		Float64()
	return avg
}

// buildTopHabits ranks habits by daysCompleted / daysInRange descending and
// keeps the top five. The sort is stable, so ties keep encounter order.
func buildTopHabits(habits []*entity.Habit, completed completionIndex, days []valueobject.Day) []entity.TopHabit {
	ranking := make([]entity.TopHabit, 0, len(habits))
	for _, habit := range habits {
		done := 0
		for _, day := range days {
			if completed[habit.ID][day] {
				done++
			}
		}
		ranking = append(ranking, entity.TopHabit{
			HabitID:        habit.ID,
			Name:           habit.Name,
			Color:          habit.Color,
			DaysCompleted:  done,
			CompletionRate: int(math.Round(float64(done) / float64(len(days)) * 100)),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].CompletionRate > ranking[j].CompletionRate
	})

	if len(ranking) > maxTopHabits {
		ranking = ranking[:maxTopHabits]
	}
	return ranking
}

// streakWithinRange is a habit's longest run of consecutive completed days
// scanning only the given window, resetting on any missing or non-completed
// day. Deliberately independent of the cross-range streak calculator.
func streakWithinRange(habitDays map[valueobject.Day]bool, days []valueobject.Day) int {
	longest := 0
	run := 0
	for _, day := range days {
		if habitDays[day] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// longestStreakInRange is the maximum in-window streak across the habit set.
func longestStreakInRange(habits []*entity.Habit, completed completionIndex, days []valueobject.Day) int {
	longest := 0
	for _, habit := range habits {
		if s := streakWithinRange(completed[habit.ID], days); s > longest {
			longest = s
		}
	}
	return longest
}
