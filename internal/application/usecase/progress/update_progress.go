// Package progress contains completion-log use cases.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/snapshot"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// UpdateProgressInput represents the input for recording period progress.
type UpdateProgressInput struct {
	UserID     uuid.UUID
	HabitID    uuid.UUID
	Date       string
	Period     entity.TimePeriod
	Percentage int
}

// UpdateProgressOutput represents the output of recording period progress.
type UpdateProgressOutput struct {
	Entry       *entity.CompletionEntry
	DayComplete bool
}

// UpdateProgressUseCase records one period's progress value in a habit's
// completion log. There is exactly one entry per (user, habit, date);
// repeated updates for the same day mutate that entry, and the day's streak
// snapshot is refreshed afterwards so the stored history tracks the log.
type UpdateProgressUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	snapshotHabit  *snapshot.SnapshotHabitUseCase
}

// NewUpdateProgressUseCase creates a new UpdateProgressUseCase instance.
func NewUpdateProgressUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	snapshotHabit *snapshot.SnapshotHabitUseCase,
) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		snapshotHabit:  snapshotHabit,
	}
}

// Execute validates and records the progress value. Validation failures
// reject the request before anything is read or written.
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, input UpdateProgressInput) (*UpdateProgressOutput, error) {
	date, err := valueobject.ParseDay(input.Date)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidDate,
			"date must be a YYYY-MM-DD date",
			domainerror.ErrInvalidDate,
		)
	}
	if !entity.ValidTimePeriod(input.Period) {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidTimePeriod,
			"time period must be morning, afternoon, evening or night",
			domainerror.ErrInvalidTimePeriod,
		)
	}
	if !entity.ValidPercentage(input.Percentage) {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidPercentage,
			"percentage must be one of 0, 10, 20, 50, 80, 100",
			domainerror.ErrInvalidPercentage,
		)
	}

	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}
	if habit == nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	if habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeUnauthorizedHabit,
			"habit does not belong to user",
			domainerror.ErrUnauthorizedHabitAccess,
		)
	}

	entry, err := uc.completionRepo.FindByHabitAndDate(ctx, input.UserID, input.HabitID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion entry: %w", err)
	}
	if entry == nil {
		entry = entity.NewCompletionEntry(input.UserID, input.HabitID, date)
	}
	entry.SetPeriod(input.Period, input.Percentage)

	if err := uc.completionRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store completion entry: %w", err)
	}

	// Keep the stored streak history in step with the log. The snapshot is
	// recomputed from the full log, so overwriting an earlier day's
	// percentages settles correctly here too.
	if _, err := uc.snapshotHabit.Execute(ctx, snapshot.SnapshotHabitInput{
		UserID:  input.UserID,
		HabitID: input.HabitID,
		Date:    date,
	}); err != nil {
		return nil, fmt.Errorf("failed to refresh streak snapshot: %w", err)
	}

	return &UpdateProgressOutput{Entry: entry, DayComplete: entry.IsComplete()}, nil
}
