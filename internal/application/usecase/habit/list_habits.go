// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID uuid.UUID
	// Date filters the list to habits visible on that day. Zero means no
	// visibility filter: all active habits are returned.
	Date valueobject.Day
	// IncludeArchived also returns soft-archived habits. Ignored when Date
	// is set, since archived habits are never visible past their archival.
	IncludeArchived bool
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.Habit
}

// ListHabitsUseCase handles habit listing logic.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{habitRepo: habitRepo}
}

// Execute performs the habit listing. Results keep creation order.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	if !input.Date.IsZero() {
		habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list habits: %w", err)
		}
		visible := make([]*entity.Habit, 0, len(habits))
		for _, h := range habits {
			if h.VisibleOn(input.Date) {
				visible = append(visible, h)
			}
		}
		return &ListHabitsOutput{Habits: visible}, nil
	}

	if input.IncludeArchived {
		habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list habits: %w", err)
		}
		return &ListHabitsOutput{Habits: habits}, nil
	}

	habits, err := uc.habitRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	return &ListHabitsOutput{Habits: habits}, nil
}
