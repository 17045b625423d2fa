// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/snapshot"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// ArchiveHabitInput represents the input for archiving a habit.
type ArchiveHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// ArchiveHabitUseCase soft-archives a habit. Deleting a habit never drops
// its data: the habit row stays, its completion log stays, and its streak
// history is preserved through the snapshot archiver.
type ArchiveHabitUseCase struct {
	habitRepo     adapter.HabitRepository
	archiveStreak *snapshot.ArchiveOnDeletionUseCase
	now           func() time.Time
}

// NewArchiveHabitUseCase creates a new ArchiveHabitUseCase instance.
func NewArchiveHabitUseCase(
	habitRepo adapter.HabitRepository,
	archiveStreak *snapshot.ArchiveOnDeletionUseCase,
) *ArchiveHabitUseCase {
	return &ArchiveHabitUseCase{
		habitRepo:     habitRepo,
		archiveStreak: archiveStreak,
		now:           time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (uc *ArchiveHabitUseCase) WithClock(now func() time.Time) *ArchiveHabitUseCase {
	uc.now = now
	return uc
}

// Execute performs the habit archival.
func (uc *ArchiveHabitUseCase) Execute(ctx context.Context, input ArchiveHabitInput) error {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return fmt.Errorf("failed to find habit: %w", err)
	}
	if habit == nil {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	if habit.UserID != input.UserID {
		return domainerror.NewHabitError(
			domainerror.ErrCodeUnauthorizedHabit,
			"habit does not belong to user",
			domainerror.ErrUnauthorizedHabitAccess,
		)
	}
	if habit.IsArchived() {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitAlreadyArchived,
			"habit is already archived",
			domainerror.ErrHabitAlreadyArchived,
		)
	}

	// Archive the habit first so the final snapshot carries the archived
	// state, then preserve the streak history.
	habit.Archive(uc.now().UTC())
	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return fmt.Errorf("failed to archive habit: %w", err)
	}

	if err := uc.archiveStreak.Execute(ctx, snapshot.ArchiveOnDeletionInput{
		UserID:  input.UserID,
		HabitID: input.HabitID,
	}); err != nil {
		return fmt.Errorf("failed to preserve streak history: %w", err)
	}

	return nil
}
