// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// CompletionEntryModel represents the completion_entries table. The unique
// index on (user_id, habit_id, date) is what makes progress writes upserts:
// one row per habit per day, period columns mutated in place.
type CompletionEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completion_user_habit_date"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completion_user_habit_date"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_completion_user_habit_date;index"`
	Morning   int       `gorm:"not null;default:0"`
	Afternoon int       `gorm:"not null;default:0"`
	Evening   int       `gorm:"not null;default:0"`
	Night     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompletionEntryModel.
func (CompletionEntryModel) TableName() string {
	return "completion_entries"
}

// ToEntity converts a CompletionEntryModel to a domain CompletionEntry entity.
func (m *CompletionEntryModel) ToEntity() *entity.CompletionEntry {
	return &entity.CompletionEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		HabitID:   m.HabitID,
		Date:      valueobject.Day(m.Date),
		Morning:   m.Morning,
		Afternoon: m.Afternoon,
		Evening:   m.Evening,
		Night:     m.Night,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CompletionEntryFromEntity creates a CompletionEntryModel from a domain entity.
func CompletionEntryFromEntity(entry *entity.CompletionEntry) *CompletionEntryModel {
	return &CompletionEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		HabitID:   entry.HabitID,
		Date:      entry.Date.String(),
		Morning:   entry.Morning,
		Afternoon: entry.Afternoon,
		Evening:   entry.Evening,
		Night:     entry.Night,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
