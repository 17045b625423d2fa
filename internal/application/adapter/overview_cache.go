// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// OverviewCache defines the time-boxed cache for weekly and monthly
// overviews of past ranges. The cache is a pure performance optimization:
// callers treat every error from it as a logged warning, never as a request
// failure, and a miss simply falls through to a fresh build.
type OverviewCache interface {
	// GetWeekly retrieves a cached weekly overview, or nil on a miss.
	GetWeekly(ctx context.Context, userID uuid.UUID, weekStart valueobject.Day) (*entity.WeeklyOverview, error)

	// SetWeekly stores a weekly overview keyed by (user, week start),
	// replacing any prior entry. The store expires the entry on its own
	// once it outlives the validity window.
	SetWeekly(ctx context.Context, userID uuid.UUID, weekStart valueobject.Day, overview *entity.WeeklyOverview) error

	// GetMonthly retrieves a cached monthly overview, or nil on a miss.
	GetMonthly(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entity.MonthlyOverview, error)

	// SetMonthly stores a monthly overview keyed by (user, year, month).
	SetMonthly(ctx context.Context, userID uuid.UUID, year int, month time.Month, overview *entity.MonthlyOverview) error
}
