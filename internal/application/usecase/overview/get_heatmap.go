// Package overview contains weekly and monthly overview use cases.
package overview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// GetHeatmapInput represents the input for getting a heatmap range.
type GetHeatmapInput struct {
	UserID    uuid.UUID
	StartDate valueobject.Day
	EndDate   valueobject.Day
}

// GetHeatmapOutput represents the output of getting a heatmap range.
type GetHeatmapOutput struct {
	Days []entity.DailyProgress
}

// GetHeatmapUseCase builds per-day completion percentages over an arbitrary
// date range, across all habits including archived ones. Heatmap ranges are
// ad hoc, so results are always computed fresh.
type GetHeatmapUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	now            func() time.Time
}

// NewGetHeatmapUseCase creates a new GetHeatmapUseCase instance.
func NewGetHeatmapUseCase(habitRepo adapter.HabitRepository, completionRepo adapter.CompletionRepository) *GetHeatmapUseCase {
	return &GetHeatmapUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		now:            time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (uc *GetHeatmapUseCase) WithClock(now func() time.Time) *GetHeatmapUseCase {
	uc.now = now
	return uc
}

// Execute builds the heatmap for the requested range.
func (uc *GetHeatmapUseCase) Execute(ctx context.Context, input GetHeatmapInput) (*GetHeatmapOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewOverviewError(
			domainerror.ErrCodeInvalidRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	entries, err := uc.completionRepo.FindByUserAndRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion log: %w", err)
	}

	days := valueobject.DaysIn(input.StartDate, input.EndDate)
	today := valueobject.DayOf(uc.now())

	return &GetHeatmapOutput{
		Days: buildDailyProgress(habits, indexCompletions(entries), days, today),
	}, nil
}
