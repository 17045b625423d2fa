// Package snapshot contains streak snapshot archiving use cases.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// SnapshotAllInput represents the input for snapshotting all of a user's habits.
type SnapshotAllInput struct {
	UserID uuid.UUID
	Date   valueobject.Day
}

// SnapshotAllOutput reports how the batch went. The batch as a whole
// succeeds independent of individual habit failures.
type SnapshotAllOutput struct {
	Snapshotted int
	Failed      int
}

// SnapshotAllUseCase snapshots every habit of one user, active and
// archived. Used by the scheduled daily job.
type SnapshotAllUseCase struct {
	habitRepo     adapter.HabitRepository
	snapshotHabit *SnapshotHabitUseCase
}

// NewSnapshotAllUseCase creates a new SnapshotAllUseCase instance.
func NewSnapshotAllUseCase(habitRepo adapter.HabitRepository, snapshotHabit *SnapshotHabitUseCase) *SnapshotAllUseCase {
	return &SnapshotAllUseCase{
		habitRepo:     habitRepo,
		snapshotHabit: snapshotHabit,
	}
}

// Execute snapshots each habit in turn. A failure on one habit is logged
// and the batch proceeds to the remaining ones.
func (uc *SnapshotAllUseCase) Execute(ctx context.Context, input SnapshotAllInput) (*SnapshotAllOutput, error) {
	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	output := &SnapshotAllOutput{}
	for _, habit := range habits {
		_, err := uc.snapshotHabit.Execute(ctx, SnapshotHabitInput{
			UserID:  input.UserID,
			HabitID: habit.ID,
			Date:    input.Date,
		})
		if err != nil {
			slog.Error("Failed to snapshot habit",
				"user_id", input.UserID,
				"habit_id", habit.ID,
				"date", input.Date,
				"error", err,
			)
			output.Failed++
			continue
		}
		output.Snapshotted++
	}

	return output, nil
}
