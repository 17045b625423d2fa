// Package progress contains completion-log use cases.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// GetDailyProgressInput represents the input for reading one day's log.
type GetDailyProgressInput struct {
	UserID uuid.UUID
	Date   string
}

// HabitProgress pairs a habit visible on the requested day with its
// completion entry. Entry is nil when no progress was recorded.
type HabitProgress struct {
	Habit *entity.Habit
	Entry *entity.CompletionEntry
}

// GetDailyProgressOutput represents the output of reading one day's log.
type GetDailyProgressOutput struct {
	Date   valueobject.Day
	Habits []HabitProgress
}

// GetDailyProgressUseCase lists the habits visible on a day together with
// their recorded period percentages.
type GetDailyProgressUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
}

// NewGetDailyProgressUseCase creates a new GetDailyProgressUseCase instance.
func NewGetDailyProgressUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
) *GetDailyProgressUseCase {
	return &GetDailyProgressUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
	}
}

// Execute reads the day's completion log.
func (uc *GetDailyProgressUseCase) Execute(ctx context.Context, input GetDailyProgressInput) (*GetDailyProgressOutput, error) {
	date, err := valueobject.ParseDay(input.Date)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidDate,
			"date must be a YYYY-MM-DD date",
			domainerror.ErrInvalidDate,
		)
	}

	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	entries, err := uc.completionRepo.FindByUserAndRange(ctx, input.UserID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion log: %w", err)
	}
	byHabit := make(map[uuid.UUID]*entity.CompletionEntry, len(entries))
	for _, e := range entries {
		byHabit[e.HabitID] = e
	}

	out := &GetDailyProgressOutput{Date: date}
	for _, h := range habits {
		if !h.VisibleOn(date) {
			continue
		}
		out.Habits = append(out.Habits, HabitProgress{Habit: h, Entry: byHabit[h.ID]})
	}
	return out, nil
}
