// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habitflow/backend/internal/domain/entity"
)

// InsightService defines the interface for generating coaching summaries
// from overview data via an external AI provider.
type InsightService interface {
	// IsAvailable checks if the service is configured and usable.
	IsAvailable() bool

	// WeeklySummary turns a weekly overview into a short coaching summary.
	WeeklySummary(ctx context.Context, overview *entity.WeeklyOverview) (string, error)
}
