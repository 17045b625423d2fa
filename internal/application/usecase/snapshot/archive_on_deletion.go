// Package snapshot contains streak snapshot archiving use cases.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// ArchiveOnDeletionInput represents the input for archiving a habit's
// streak history.
type ArchiveOnDeletionInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// ArchiveOnDeletionUseCase preserves a habit's streak history when the user
// deletes (soft-archives) it: one final snapshot as of the current date,
// then every historical snapshot row is flipped to archived. The final
// snapshot must happen first, otherwise the last day's data is lost from
// the history.
type ArchiveOnDeletionUseCase struct {
	snapshotHabit *SnapshotHabitUseCase
	snapshotRepo  adapter.SnapshotRepository
	now           func() time.Time
}

// NewArchiveOnDeletionUseCase creates a new ArchiveOnDeletionUseCase instance.
func NewArchiveOnDeletionUseCase(
	snapshotHabit *SnapshotHabitUseCase,
	snapshotRepo adapter.SnapshotRepository,
) *ArchiveOnDeletionUseCase {
	return &ArchiveOnDeletionUseCase{
		snapshotHabit: snapshotHabit,
		snapshotRepo:  snapshotRepo,
		now:           time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (uc *ArchiveOnDeletionUseCase) WithClock(now func() time.Time) *ArchiveOnDeletionUseCase {
	uc.now = now
	return uc
}

// Execute takes the final snapshot and marks the habit's snapshot history
// archived. Rows are never deleted.
func (uc *ArchiveOnDeletionUseCase) Execute(ctx context.Context, input ArchiveOnDeletionInput) error {
	now := uc.now()
	today := valueobject.DayOf(now)

	if _, err := uc.snapshotHabit.Execute(ctx, SnapshotHabitInput{
		UserID:  input.UserID,
		HabitID: input.HabitID,
		Date:    today,
	}); err != nil {
		return fmt.Errorf("failed to take final snapshot: %w", err)
	}

	if err := uc.snapshotRepo.MarkHabitArchived(ctx, input.UserID, input.HabitID, now.UTC()); err != nil {
		return fmt.Errorf("failed to archive snapshot history: %w", err)
	}

	return nil
}
