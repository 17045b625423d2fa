// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// SnapshotRepository defines the interface for streak snapshot persistence.
type SnapshotRepository interface {
	// Upsert writes the snapshot keyed by (user, habit, snapshot date),
	// overwriting any prior snapshot for the same key.
	Upsert(ctx context.Context, snapshot *entity.StreakSnapshot) error

	// FindByHabitAndDate retrieves one snapshot, or nil when none exists.
	FindByHabitAndDate(ctx context.Context, userID, habitID uuid.UUID, date valueobject.Day) (*entity.StreakSnapshot, error)

	// FindLatestPerHabit retrieves the most recent snapshot of each of the
	// user's habits, optionally filtered by archived state.
	FindLatestPerHabit(ctx context.Context, userID uuid.UUID, archived bool) ([]*entity.StreakSnapshot, error)

	// CountByHabit returns the number of snapshot rows for one habit.
	CountByHabit(ctx context.Context, userID, habitID uuid.UUID) (int64, error)

	// MarkHabitArchived flips every historical snapshot row of the habit to
	// the archived streak type. Rows are never deleted.
	MarkHabitArchived(ctx context.Context, userID, habitID uuid.UUID, archivedAt time.Time) error
}
