// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/valueobject"
)

// StreakType tags the state of a streak snapshot.
type StreakType string

const (
	StreakTypeActive   StreakType = "active"
	StreakTypeEnded    StreakType = "ended"
	StreakTypeArchived StreakType = "archived"
)

// StreakResult holds the streak statistics derived from a habit's completion
// log as of a reference date.
type StreakResult struct {
	CurrentStreak     int
	LongestStreak     int
	StartDate         valueobject.Day // first completion
	EndDate           valueobject.Day // as-of date when the streak is current, else last completion
	LastCompletedDate valueobject.Day
	TotalCompletions  int
	CompletionRate    int // completions over the first..last completion span, percent
}

// StreakSnapshot is a persisted, date-stamped record of streak state. It
// denormalizes the habit's name, color, and category so the history survives
// habit archival. At most one snapshot exists per (user, habit, date);
// re-snapshotting the same date overwrites.
type StreakSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	HabitID       uuid.UUID
	SnapshotDate  valueobject.Day
	HabitName     string
	HabitColor    string
	HabitCategory string
	StreakType    StreakType
	StreakResult
	IsArchived bool
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewStreakSnapshot creates a snapshot of the given habit's streak state.
func NewStreakSnapshot(habit *Habit, date valueobject.Day, result StreakResult) *StreakSnapshot {
	now := time.Now().UTC()

	streakType := StreakTypeActive
	if habit.IsArchived() {
		streakType = StreakTypeArchived
	}

	return &StreakSnapshot{
		ID:            uuid.New(),
		UserID:        habit.UserID,
		HabitID:       habit.ID,
		SnapshotDate:  date,
		HabitName:     habit.Name,
		HabitColor:    habit.Color,
		HabitCategory: habit.Category,
		StreakType:    streakType,
		StreakResult:  result,
		IsArchived:    habit.IsArchived(),
		ArchivedAt:    habit.ArchivedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
