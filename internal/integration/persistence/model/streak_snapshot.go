// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// StreakSnapshotModel represents the streak_snapshots table. The unique
// index on (user_id, habit_id, snapshot_date) guarantees at most one
// snapshot per habit per day; re-snapshotting overwrites.
type StreakSnapshotModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_snapshot_user_habit_date"`
	HabitID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_snapshot_user_habit_date"`
	SnapshotDate      string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_snapshot_user_habit_date"`
	HabitName         string     `gorm:"type:varchar(100);not null"`
	HabitColor        string     `gorm:"type:varchar(7);not null"`
	HabitCategory     string     `gorm:"type:varchar(50)"`
	StreakType        string     `gorm:"type:varchar(20);not null;default:'active';index"`
	CurrentStreak     int        `gorm:"not null;default:0"`
	LongestStreak     int        `gorm:"not null;default:0"`
	StartDate         string     `gorm:"type:varchar(10)"`
	EndDate           string     `gorm:"type:varchar(10)"`
	LastCompletedDate string     `gorm:"type:varchar(10)"`
	TotalCompletions  int        `gorm:"not null;default:0"`
	CompletionRate    int        `gorm:"not null;default:0"`
	IsArchived        bool       `gorm:"not null;default:false;index"`
	ArchivedAt        *time.Time
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`
}

// TableName returns the table name for the StreakSnapshotModel.
func (StreakSnapshotModel) TableName() string {
	return "streak_snapshots"
}

// ToEntity converts a StreakSnapshotModel to a domain StreakSnapshot entity.
func (m *StreakSnapshotModel) ToEntity() *entity.StreakSnapshot {
	return &entity.StreakSnapshot{
		ID:            m.ID,
		UserID:        m.UserID,
		HabitID:       m.HabitID,
		SnapshotDate:  valueobject.Day(m.SnapshotDate),
		HabitName:     m.HabitName,
		HabitColor:    m.HabitColor,
		HabitCategory: m.HabitCategory,
		StreakType:    entity.StreakType(m.StreakType),
		StreakResult: entity.StreakResult{
			CurrentStreak:     m.CurrentStreak,
			LongestStreak:     m.LongestStreak,
			StartDate:         valueobject.Day(m.StartDate),
			EndDate:           valueobject.Day(m.EndDate),
			LastCompletedDate: valueobject.Day(m.LastCompletedDate),
			TotalCompletions:  m.TotalCompletions,
			CompletionRate:    m.CompletionRate,
		},
		IsArchived: m.IsArchived,
		ArchivedAt: m.ArchivedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// StreakSnapshotFromEntity creates a StreakSnapshotModel from a domain entity.
func StreakSnapshotFromEntity(s *entity.StreakSnapshot) *StreakSnapshotModel {
	return &StreakSnapshotModel{
		ID:                s.ID,
		UserID:            s.UserID,
		HabitID:           s.HabitID,
		SnapshotDate:      s.SnapshotDate.String(),
		HabitName:         s.HabitName,
		HabitColor:        s.HabitColor,
		HabitCategory:     s.HabitCategory,
		StreakType:        string(s.StreakType),
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		StartDate:         s.StartDate.String(),
		EndDate:           s.EndDate.String(),
		LastCompletedDate: s.LastCompletedDate.String(),
		TotalCompletions:  s.TotalCompletions,
		CompletionRate:    s.CompletionRate,
		IsArchived:        s.IsArchived,
		ArchivedAt:        s.ArchivedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
