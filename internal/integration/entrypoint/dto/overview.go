// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// DailyProgressItem represents one day's aggregate completion.
type DailyProgressItem struct {
	Date       string `json:"date"`
	DayLabel   string `json:"day_label"`
	Completion int    `json:"completion"`
	IsToday    bool   `json:"is_today"`
}

// TopHabitItem represents one ranked habit in an overview.
type TopHabitItem struct {
	HabitID        string `json:"habit_id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	DaysCompleted  int    `json:"days_completed"`
	CompletionRate int    `json:"completion_rate"`
}

// WeeklyOverviewResponse represents the response for the weekly overview.
type WeeklyOverviewResponse struct {
	WeekStart     string              `json:"week_start"`
	WeekEnd       string              `json:"week_end"`
	Days          []DailyProgressItem `json:"days"`
	WeeklyAverage float64             `json:"weekly_average"`
	TopHabits     []TopHabitItem      `json:"top_habits"`
	LongestStreak int                 `json:"longest_streak"`
	CalculatedAt  time.Time           `json:"calculated_at"`
	Cached        bool                `json:"cached"`
}

// HabitMonthStreakItem represents one habit's in-month streak.
type HabitMonthStreakItem struct {
	HabitID       string `json:"habit_id"`
	Name          string `json:"name"`
	LongestStreak int    `json:"longest_streak"`
}

// MonthlyOverviewResponse represents the response for the monthly overview.
type MonthlyOverviewResponse struct {
	Year           int                    `json:"year"`
	Month          int                    `json:"month"`
	Days           []DailyProgressItem    `json:"days"`
	MonthlyAverage float64                `json:"monthly_average"`
	TopHabits      []TopHabitItem         `json:"top_habits"`
	HabitStreaks   []HabitMonthStreakItem `json:"habit_streaks"`
	LongestStreak  int                    `json:"longest_streak"`
	CalculatedAt   time.Time              `json:"calculated_at"`
	Cached         bool                   `json:"cached"`
}

// HeatmapResponse represents the response for an arbitrary-range heatmap.
type HeatmapResponse struct {
	Days []DailyProgressItem `json:"days"`
}

func toDailyProgressItems(days []entity.DailyProgress) []DailyProgressItem {
	items := make([]DailyProgressItem, len(days))
	for i, d := range days {
		items[i] = DailyProgressItem{
			Date:       d.Date.String(),
			DayLabel:   d.DayLabel,
			Completion: d.Completion,
			IsToday:    d.IsToday,
		}
	}
	return items
}

func toTopHabitItems(habits []entity.TopHabit) []TopHabitItem {
	items := make([]TopHabitItem, len(habits))
	for i, h := range habits {
		items[i] = TopHabitItem{
			HabitID:        h.HabitID.String(),
			Name:           h.Name,
			Color:          h.Color,
			DaysCompleted:  h.DaysCompleted,
			CompletionRate: h.CompletionRate,
		}
	}
	return items
}

// ToWeeklyOverviewResponse converts a weekly overview to its DTO.
func ToWeeklyOverviewResponse(o *entity.WeeklyOverview, cached bool) WeeklyOverviewResponse {
	return WeeklyOverviewResponse{
		WeekStart:     o.WeekStart.String(),
		WeekEnd:       o.WeekEnd.String(),
		Days:          toDailyProgressItems(o.Days),
		WeeklyAverage: o.WeeklyAverage,
		TopHabits:     toTopHabitItems(o.TopHabits),
		LongestStreak: o.LongestStreak,
		CalculatedAt:  o.CalculatedAt,
		Cached:        cached,
	}
}

// ToMonthlyOverviewResponse converts a monthly overview to its DTO.
func ToMonthlyOverviewResponse(o *entity.MonthlyOverview, cached bool) MonthlyOverviewResponse {
	streaks := make([]HabitMonthStreakItem, len(o.HabitStreaks))
	for i, s := range o.HabitStreaks {
		streaks[i] = HabitMonthStreakItem{
			HabitID:       s.HabitID.String(),
			Name:          s.Name,
			LongestStreak: s.LongestStreak,
		}
	}

	return MonthlyOverviewResponse{
		Year:           o.Year,
		Month:          int(o.Month),
		Days:           toDailyProgressItems(o.Days),
		MonthlyAverage: o.MonthlyAverage,
		TopHabits:      toTopHabitItems(o.TopHabits),
		HabitStreaks:   streaks,
		LongestStreak:  o.LongestStreak,
		CalculatedAt:   o.CalculatedAt,
		Cached:         cached,
	}
}

// ToHeatmapResponse converts a range of daily progress entries to a
// HeatmapResponse DTO.
func ToHeatmapResponse(days []entity.DailyProgress) HeatmapResponse {
	return HeatmapResponse{Days: toDailyProgressItems(days)}
}
