// Package snapshot contains streak snapshot archiving use cases.
package snapshot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/streak"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// SnapshotHabitInput represents the input for snapshotting a habit.
type SnapshotHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	Date    valueobject.Day
}

// SnapshotHabitOutput represents the output of snapshotting a habit. The
// Snapshot is nil when the habit no longer exists.
type SnapshotHabitOutput struct {
	Snapshot *entity.StreakSnapshot
}

// SnapshotHabitUseCase persists a point-in-time streak snapshot keyed by
// (user, habit, date). The upsert is idempotent: the snapshot is a pure
// function of the completion log as of that date, so re-running for the
// same key produces the same result and retries are safe.
type SnapshotHabitUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	snapshotRepo   adapter.SnapshotRepository
}

// NewSnapshotHabitUseCase creates a new SnapshotHabitUseCase instance.
func NewSnapshotHabitUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	snapshotRepo adapter.SnapshotRepository,
) *SnapshotHabitUseCase {
	return &SnapshotHabitUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		snapshotRepo:   snapshotRepo,
	}
}

// Execute computes the habit's streak stats as of the given date and upserts
// the snapshot. A habit that has been removed out of band yields a nil
// snapshot, not an error.
func (uc *SnapshotHabitUseCase) Execute(ctx context.Context, input SnapshotHabitInput) (*SnapshotHabitOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up habit: %w", err)
	}
	if habit == nil || habit.UserID != input.UserID {
		return &SnapshotHabitOutput{}, nil
	}

	log, err := uc.completionRepo.FindByHabit(ctx, input.UserID, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion log: %w", err)
	}

	result := streak.Calculate(log, input.Date)

	snap := entity.NewStreakSnapshot(habit, input.Date, result)
	if err := uc.snapshotRepo.Upsert(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	return &SnapshotHabitOutput{Snapshot: snap}, nil
}
