// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/valueobject"
)

// TimePeriod represents one of the four trackable slots of a day.
type TimePeriod string

const (
	TimePeriodMorning   TimePeriod = "morning"
	TimePeriodAfternoon TimePeriod = "afternoon"
	TimePeriodEvening   TimePeriod = "evening"
	TimePeriodNight     TimePeriod = "night"
)

// CompletePercentage is the period value that marks a day as complete.
const CompletePercentage = 100

// AllowedPercentages are the only accepted per-period progress values.
var AllowedPercentages = []int{0, 10, 20, 50, 80, 100}

// ValidTimePeriod reports whether p names one of the four day periods.
func ValidTimePeriod(p TimePeriod) bool {
	switch p {
	case TimePeriodMorning, TimePeriodAfternoon, TimePeriodEvening, TimePeriodNight:
		return true
	}
	return false
}

// ValidPercentage reports whether v is one of the allowed progress values.
func ValidPercentage(v int) bool {
	for _, allowed := range AllowedPercentages {
		if v == allowed {
			return true
		}
	}
	return false
}

// CompletionEntry holds one day's four period percentages for one habit.
// Exactly one entry exists per (user, habit, date); later period updates
// mutate the same entry.
type CompletionEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	HabitID   uuid.UUID
	Date      valueobject.Day
	Morning   int
	Afternoon int
	Evening   int
	Night     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCompletionEntry creates a completion entry with all periods at zero.
func NewCompletionEntry(userID, habitID uuid.UUID, date valueobject.Day) *CompletionEntry {
	now := time.Now().UTC()

	return &CompletionEntry{
		ID:        uuid.New(),
		UserID:    userID,
		HabitID:   habitID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetPeriod records a progress value for one period of the day.
func (e *CompletionEntry) SetPeriod(period TimePeriod, percentage int) {
	switch period {
	case TimePeriodMorning:
		e.Morning = percentage
	case TimePeriodAfternoon:
		e.Afternoon = percentage
	case TimePeriodEvening:
		e.Evening = percentage
	case TimePeriodNight:
		e.Night = percentage
	}
	e.UpdatedAt = time.Now().UTC()
}

// IsComplete is the single source of truth for "did the user do this habit
// that day": true iff any period reached 100. Streaks, snapshots, and
// aggregates must all go through this predicate.
func (e *CompletionEntry) IsComplete() bool {
	return e.Morning == CompletePercentage ||
		e.Afternoon == CompletePercentage ||
		e.Evening == CompletePercentage ||
		e.Night == CompletePercentage
}
