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

// GetWeeklyInput represents the input for getting a weekly overview.
type GetWeeklyInput struct {
	UserID uuid.UUID
	// WeekStart selects the week; any day within the week is accepted and
	// normalized to its Monday. Zero means the current week.
	WeekStart valueobject.Day
}

// GetWeeklyOutput represents the output of getting a weekly overview.
type GetWeeklyOutput struct {
	Overview *entity.WeeklyOverview
	Cached   bool
}

// GetWeeklyUseCase builds the weekly overview of a user's active habits,
// reading and writing through the overview cache for weeks fully in the
// past.
type GetWeeklyUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	cache          adapter.OverviewCache
	cacheValidity  time.Duration
	now            func() time.Time
}

// NewGetWeeklyUseCase creates a new GetWeeklyUseCase instance.
func NewGetWeeklyUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	cache adapter.OverviewCache,
	cacheValidity time.Duration,
) *GetWeeklyUseCase {
	return &GetWeeklyUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		cache:          cache,
		cacheValidity:  cacheValidity,
		now:            time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (uc *GetWeeklyUseCase) WithClock(now func() time.Time) *GetWeeklyUseCase {
	uc.now = now
	return uc
}

// Execute builds or fetches the weekly overview.
func (uc *GetWeeklyUseCase) Execute(ctx context.Context, input GetWeeklyInput) (*GetWeeklyOutput, error) {
	now := uc.now()
	today := valueobject.DayOf(now)

	weekStart := input.WeekStart
	if weekStart.IsZero() {
		weekStart = today
	}
	if _, err := valueobject.ParseDay(weekStart.String()); err != nil {
		return nil, domainerror.NewOverviewError(
			domainerror.ErrCodeInvalidWeekStart,
			"week start must be a YYYY-MM-DD date",
			err,
		)
	}
	weekStart = valueobject.WeekStartOf(weekStart)
	weekEnd := weekStart.AddDays(6)

	isPast := RangeIsFullyPast(weekEnd, today)

	if isPast {
		if cached := uc.readCache(ctx, input.UserID, weekStart, now); cached != nil {
			return &GetWeeklyOutput{Overview: cached, Cached: true}, nil
		}
	}

	habits, err := uc.habitRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	entries, err := uc.completionRepo.FindByUserAndRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion log: %w", err)
	}

	days := valueobject.DaysIn(weekStart, weekEnd)
	completed := indexCompletions(entries)
	progress := buildDailyProgress(habits, completed, days, today)

	overview := &entity.WeeklyOverview{
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Days:          progress,
		WeeklyAverage: averageCompletion(progress),
		TopHabits:     buildTopHabits(habits, completed, days),
		LongestStreak: longestStreakInRange(habits, completed, days),
		CalculatedAt:  now.UTC(),
	}

	if isPast {
		if err := uc.cache.SetWeekly(ctx, input.UserID, weekStart, overview); err != nil {
			slog.Warn("Failed to cache weekly overview",
				"user_id", input.UserID,
				"week_start", weekStart,
				"error", err,
			)
		}
	}

	return &GetWeeklyOutput{Overview: overview}, nil
}

// readCache returns a valid cached overview or nil. Cache failures are
// logged and treated as a miss; the cache is never a correctness dependency.
func (uc *GetWeeklyUseCase) readCache(ctx context.Context, userID uuid.UUID, weekStart valueobject.Day, now time.Time) *entity.WeeklyOverview {
	cached, err := uc.cache.GetWeekly(ctx, userID, weekStart)
	if err != nil {
		slog.Warn("Failed to read weekly overview cache",
			"user_id", userID,
			"week_start", weekStart,
			"error", err,
		)
		return nil
	}
	if cached == nil || now.Sub(cached.CalculatedAt) >= uc.cacheValidity {
		return nil
	}

	// Only the isToday flags depend on the request time; for a past week
	// they are always false.
	for i := range cached.Days {
		cached.Days[i].IsToday = false
	}
	return cached
}
