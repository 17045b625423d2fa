// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name       string         `gorm:"type:varchar(100);not null"`
	Category   string         `gorm:"type:varchar(50)"`
	Color      string         `gorm:"type:varchar(7);not null"`
	Goal       int            `gorm:"not null;default:0"`
	TaskType   string         `gorm:"type:varchar(20);not null;default:'recurring'"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	IsActive   bool           `gorm:"not null;default:true;index"`
	StartDate  string         `gorm:"type:varchar(10);not null"`
	Position   int            `gorm:"not null;default:0"`
	ArchivedAt *time.Time
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	return &entity.Habit{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Category:   m.Category,
		Color:      m.Color,
		Goal:       m.Goal,
		TaskType:   entity.TaskType(m.TaskType),
		Tags:       m.Tags,
		IsActive:   m.IsActive,
		StartDate:  valueobject.Day(m.StartDate),
		Position:   m.Position,
		ArchivedAt: m.ArchivedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:         habit.ID,
		UserID:     habit.UserID,
		Name:       habit.Name,
		Category:   habit.Category,
		Color:      habit.Color,
		Goal:       habit.Goal,
		TaskType:   string(habit.TaskType),
		Tags:       habit.Tags,
		IsActive:   habit.IsActive,
		StartDate:  habit.StartDate.String(),
		Position:   habit.Position,
		ArchivedAt: habit.ArchivedAt,
		CreatedAt:  habit.CreatedAt,
		UpdatedAt:  habit.UpdatedAt,
	}
}
