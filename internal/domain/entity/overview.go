// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/valueobject"
)

// DailyProgress is one day's aggregate completion inside an overview.
type DailyProgress struct {
	Date       valueobject.Day `json:"date"`
	DayLabel   string          `json:"day_label"`
	Completion int             `json:"completion"` // round(completed/total*100), 0 when no habits
	IsToday    bool            `json:"is_today"`
}

// TopHabit is one entry of an overview's top-5 habit ranking.
type TopHabit struct {
	HabitID        uuid.UUID `json:"habit_id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	DaysCompleted  int       `json:"days_completed"`
	CompletionRate int       `json:"completion_rate"` // daysCompleted over daysInRange, percent
}

// WeeklyOverview is the derived weekly summary for one user: per-day
// completion, the week average, the top habits, and the longest streak run
// inside the week. Only overviews for weeks fully in the past are cached.
type WeeklyOverview struct {
	WeekStart     valueobject.Day `json:"week_start"`
	WeekEnd       valueobject.Day `json:"week_end"`
	Days          []DailyProgress `json:"days"`
	WeeklyAverage float64         `json:"weekly_average"` // mean of per-day completion, one decimal
	TopHabits     []TopHabit      `json:"top_habits"`
	LongestStreak int             `json:"longest_streak"`
	CalculatedAt  time.Time       `json:"calculated_at"`
}

// HabitMonthStreak is a habit's longest streak computed inside a single
// month window only, independent of its cross-month streak.
type HabitMonthStreak struct {
	HabitID       uuid.UUID `json:"habit_id"`
	Name          string    `json:"name"`
	LongestStreak int       `json:"longest_streak"`
}

// MonthlyOverview is the derived monthly summary for one user. It spans all
// habits, including archived ones, since historical months may reference
// habits that have since been retired.
type MonthlyOverview struct {
	Year           int                `json:"year"`
	Month          time.Month         `json:"month"`
	Days           []DailyProgress    `json:"days"`
	MonthlyAverage float64            `json:"monthly_average"` // mean of per-day completion, one decimal
	TopHabits      []TopHabit         `json:"top_habits"`
	HabitStreaks   []HabitMonthStreak `json:"habit_streaks"`
	LongestStreak  int                `json:"longest_streak"`
	CalculatedAt   time.Time          `json:"calculated_at"`
}
