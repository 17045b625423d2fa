// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// CompletionRepository defines the interface for the completion log store.
type CompletionRepository interface {
	// Upsert writes the entry keyed by (user, habit, date). A write with a
	// matching key atomically overwrites the existing row; it never creates
	// a duplicate.
	Upsert(ctx context.Context, entry *entity.CompletionEntry) error

	// FindByHabitAndDate retrieves one entry, or nil when no progress was
	// recorded for that day.
	FindByHabitAndDate(ctx context.Context, userID, habitID uuid.UUID, date valueobject.Day) (*entity.CompletionEntry, error)

	// FindByHabit retrieves a habit's full completion log ordered by date
	// ascending.
	FindByHabit(ctx context.Context, userID, habitID uuid.UUID) ([]*entity.CompletionEntry, error)

	// FindByUserAndRange retrieves every entry for the user with start <=
	// date <= end, ordered by date ascending.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end valueobject.Day) ([]*entity.CompletionEntry, error)
}
