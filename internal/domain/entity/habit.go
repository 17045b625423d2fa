// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/valueobject"
)

// TaskType represents how a habit recurs.
type TaskType string

const (
	// TaskTypeRecurring habits are visible from their start date until archived.
	TaskTypeRecurring TaskType = "recurring"
	// TaskTypeSingleDay habits are visible only on their creation date.
	TaskTypeSingleDay TaskType = "single_day"
)

// DefaultHabitColor is the default color for habits.
const DefaultHabitColor = "#10B981"

// Habit represents a tracked habit in the HabitFlow system.
type Habit struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Category   string
	Color      string
	Goal       int // target completed days per week
	TaskType   TaskType
	Tags       []string
	IsActive   bool
	StartDate  valueobject.Day
	Position   int // creation order within the user's habit list
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewHabit creates a new Habit entity. The start date doubles as the
// creation day for single-day habits.
// Note: defaulting logic for color should be applied in the Application
// layer (UseCase) before calling this constructor.
func NewHabit(userID uuid.UUID, name, category, color string, goal int, taskType TaskType, startDate valueobject.Day, position int) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Color:     color,
		Goal:      goal,
		TaskType:  taskType,
		IsActive:  true,
		StartDate: startDate,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Archive soft-archives the habit. Historical data is never deleted; the
// habit only stops being visible and active from this point on.
func (h *Habit) Archive(at time.Time) {
	h.IsActive = false
	h.ArchivedAt = &at
	h.UpdatedAt = at
}

// IsArchived reports whether the habit has been soft-archived.
func (h *Habit) IsArchived() bool {
	return h.ArchivedAt != nil
}

// VisibleOn reports whether the habit should appear on the given day.
// A single-day habit is visible only on its creation date; a recurring
// habit is visible from its start date until archived.
func (h *Habit) VisibleOn(day valueobject.Day) bool {
	if h.TaskType == TaskTypeSingleDay {
		return day == h.StartDate
	}
	if !h.StartDate.IsZero() && day.Before(h.StartDate) {
		return false
	}
	if h.ArchivedAt != nil && day.After(valueobject.DayOf(*h.ArchivedAt)) {
		return false
	}
	return true
}
