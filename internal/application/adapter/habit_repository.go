// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID. Returns nil without error when
	// the habit does not exist; it may have been removed out of band and
	// callers treat that as "no data", not as failure.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUserID retrieves all habits for a user in creation order,
	// including archived ones.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// FindActiveByUserID retrieves the user's non-archived habits in
	// creation order.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// Update updates an existing habit in the database.
	Update(ctx context.Context, habit *entity.Habit) error

	// CountByUserID returns the number of habits the user has ever created.
	// Used to assign creation-order positions.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
