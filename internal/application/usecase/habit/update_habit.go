// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit updates. Nil pointer
// fields are left unchanged.
type UpdateHabitInput struct {
	UserID   uuid.UUID
	HabitID  uuid.UUID
	Name     *string
	Category *string
	Color    *string
	Goal     *int
	Tags     []string // nil leaves tags unchanged; empty slice clears them
}

// UpdateHabitOutput represents the output of habit updates.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{habitRepo: habitRepo}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := uc.loadOwned(ctx, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeMissingHabitFields,
				"habit name is required",
				nil,
			)
		}
		habit.Name = name
	}
	if input.Category != nil {
		habit.Category = *input.Category
	}
	if input.Color != nil && *input.Color != "" {
		habit.Color = *input.Color
	}
	if input.Goal != nil {
		if *input.Goal < 0 || *input.Goal > 7 {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidGoal,
				"weekly goal must be between 0 and 7 days",
				domainerror.ErrInvalidGoal,
			)
		}
		habit.Goal = *input.Goal
	}
	if input.Tags != nil {
		habit.Tags = input.Tags
	}
	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{Habit: habit}, nil
}

// loadOwned fetches a habit and checks ownership.
func (uc *UpdateHabitUseCase) loadOwned(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := uc.habitRepo.FindByID(ctx, habitID)
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
	if habit.UserID != userID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeUnauthorizedHabit,
			"habit does not belong to user",
			domainerror.ErrUnauthorizedHabitAccess,
		)
	}
	return habit, nil
}
