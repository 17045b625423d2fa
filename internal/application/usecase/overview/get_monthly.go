// Package overview contains weekly and monthly overview use cases.
package overview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// GetMonthlyInput represents the input for getting a monthly overview.
// Zero Year/Month mean the current month.
type GetMonthlyInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// GetMonthlyOutput represents the output of getting a monthly overview.
type GetMonthlyOutput struct {
	Overview *entity.MonthlyOverview
	Cached   bool
}

// GetMonthlyUseCase builds the monthly overview. Unlike the weekly view it
// spans all of the user's habits, including archived ones, since historical
// months may reference habits that have since been retired.
type GetMonthlyUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	cache          adapter.OverviewCache
	cacheValidity  time.Duration
	now            func() time.Time
}

// NewGetMonthlyUseCase creates a new GetMonthlyUseCase instance.
func NewGetMonthlyUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	cache adapter.OverviewCache,
	cacheValidity time.Duration,
) *GetMonthlyUseCase {
	return &GetMonthlyUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		cache:          cache,
		cacheValidity:  cacheValidity,
		now:            time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (uc *GetMonthlyUseCase) WithClock(now func() time.Time) *GetMonthlyUseCase {
	uc.now = now
	return uc
}

// Execute builds or fetches the monthly overview.
func (uc *GetMonthlyUseCase) Execute(ctx context.Context, input GetMonthlyInput) (*GetMonthlyOutput, error) {
	now := uc.now()
	today := valueobject.DayOf(now)

	year, month := input.Year, input.Month
	if year == 0 && month == 0 {
		year, month = valueobject.MonthOf(today)
	}
	if month < time.January || month > time.December {
		return nil, domainerror.NewOverviewError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if year < 2000 || year > 2200 {
		return nil, domainerror.NewOverviewError(
			domainerror.ErrCodeInvalidYear,
			"year is out of range",
			domainerror.ErrInvalidYear,
		)
	}

	isPast := MonthIsFullyPast(year, month, today)

	if isPast {
		if cached := uc.readCache(ctx, input.UserID, year, month, now); cached != nil {
			return &GetMonthlyOutput{Overview: cached, Cached: true}, nil
		}
	}

	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	first, last := valueobject.MonthBounds(year, month)
	entries, err := uc.completionRepo.FindByUserAndRange(ctx, input.UserID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion log: %w", err)
	}

	days := valueobject.DaysIn(first, last)
	completed := indexCompletions(entries)
	progress := buildDailyProgress(habits, completed, days, today)

	habitStreaks := make([]entity.HabitMonthStreak, 0, len(habits))
	longest := 0
	for _, habit := range habits {
		s := streakWithinRange(completed[habit.ID], days)
		habitStreaks = append(habitStreaks, entity.HabitMonthStreak{
			HabitID:       habit.ID,
			Name:          habit.Name,
			LongestStreak: s,
		})
		if s > longest {
			longest = s
		}
	}

	overview := &entity.MonthlyOverview{
		Year:           year,
		Month:          month,
		Days:           progress,
		MonthlyAverage: averageCompletion(progress),
		TopHabits:      buildTopHabits(habits, completed, days),
		HabitStreaks:   habitStreaks,
		LongestStreak:  longest,
		CalculatedAt:   now.UTC(),
	}

	if isPast {
		if err := uc.cache.SetMonthly(ctx, input.UserID, year, month, overview); err != nil {
			slog.Warn("Failed to cache monthly overview",
				"user_id", input.UserID,
				"year", year,
				"month", int(month),
				"error", err,
			)
		}
	}

	return &GetMonthlyOutput{Overview: overview}, nil
}

func (uc *GetMonthlyUseCase) readCache(ctx context.Context, userID uuid.UUID, year int, month time.Month, now time.Time) *entity.MonthlyOverview {
	cached, err := uc.cache.GetMonthly(ctx, userID, year, month)
	if err != nil {
		slog.Warn("Failed to read monthly overview cache",
			"user_id", userID,
			"year", year,
			"month", int(month),
			"error", err,
		)
		return nil
	}
	if cached == nil || now.Sub(cached.CalculatedAt) >= uc.cacheValidity {
		return nil
	}

	for i := range cached.Days {
		cached.Days[i].IsToday = false
	}
	return cached
}
