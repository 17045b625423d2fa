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
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID    uuid.UUID
	Name      string
	Category  string
	Color     string // Optional, defaults to entity.DefaultHabitColor
	Goal      int    // Target completed days per week, 0..7
	TaskType  entity.TaskType
	Tags      []string
	StartDate valueobject.Day // Optional, defaults to today
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	now       func() time.Time
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		now:       time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (uc *CreateHabitUseCase) WithClock(now func() time.Time) *CreateHabitUseCase {
	uc.now = now
	return uc
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"habit name is required",
			nil,
		)
	}

	taskType := input.TaskType
	if taskType == "" {
		taskType = entity.TaskTypeRecurring
	}
	if taskType != entity.TaskTypeRecurring && taskType != entity.TaskTypeSingleDay {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidTaskType,
			"task type must be recurring or single_day",
			domainerror.ErrInvalidTaskType,
		)
	}

	if input.Goal < 0 || input.Goal > 7 {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidGoal,
			"weekly goal must be between 0 and 7 days",
			domainerror.ErrInvalidGoal,
		)
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = valueobject.DayOf(uc.now())
	} else if _, err := valueobject.ParseDay(startDate.String()); err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitStartDate,
			"start date must be a YYYY-MM-DD date",
			err,
		)
	}

	// Apply defaults
	color := input.Color
	if color == "" {
		color = entity.DefaultHabitColor
	}

	position, err := uc.habitRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user habits: %w", err)
	}

	habit := entity.NewHabit(input.UserID, name, input.Category, color, input.Goal, taskType, startDate, position)
	habit.Tags = input.Tags

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{Habit: habit}, nil
}
