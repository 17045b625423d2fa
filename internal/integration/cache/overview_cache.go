// Package cache implements the overview cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// overviewCache implements adapter.OverviewCache on Redis. Entries are
// stored as JSON with a TTL equal to the validity window, so the store
// expires them on its own; readers additionally check calculated_at, which
// keeps the window honest even if an entry somehow outlives its TTL.
type overviewCache struct {
	client   *redis.Client
	validity time.Duration
}

// NewOverviewCache creates a new Redis-backed overview cache.
func NewOverviewCache(client *redis.Client, validity time.Duration) adapter.OverviewCache {
	return &overviewCache{
		client:   client,
		validity: validity,
	}
}

func weeklyKey(userID uuid.UUID, weekStart valueobject.Day) string {
	return fmt.Sprintf("overview:weekly:%s:%s", userID, weekStart)
}

func monthlyKey(userID uuid.UUID, year int, month time.Month) string {
	return fmt.Sprintf("overview:monthly:%s:%04d-%02d", userID, year, int(month))
}

// GetWeekly retrieves a cached weekly overview, or nil on a miss.
func (c *overviewCache) GetWeekly(ctx context.Context, userID uuid.UUID, weekStart valueobject.Day) (*entity.WeeklyOverview, error) {
	payload, err := c.client.Get(ctx, weeklyKey(userID, weekStart)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read weekly overview cache: %w", err)
	}

	var overview entity.WeeklyOverview
	if err := json.Unmarshal(payload, &overview); err != nil {
		return nil, fmt.Errorf("failed to decode weekly overview cache entry: %w", err)
	}
	return &overview, nil
}

// SetWeekly stores a weekly overview keyed by (user, week start).
func (c *overviewCache) SetWeekly(ctx context.Context, userID uuid.UUID, weekStart valueobject.Day, overview *entity.WeeklyOverview) error {
	payload, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("failed to encode weekly overview: %w", err)
	}
	if err := c.client.Set(ctx, weeklyKey(userID, weekStart), payload, c.validity).Err(); err != nil {
		return fmt.Errorf("failed to write weekly overview cache: %w", err)
	}
	return nil
}

// GetMonthly retrieves a cached monthly overview, or nil on a miss.
func (c *overviewCache) GetMonthly(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entity.MonthlyOverview, error) {
	payload, err := c.client.Get(ctx, monthlyKey(userID, year, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read monthly overview cache: %w", err)
	}

	var overview entity.MonthlyOverview
	if err := json.Unmarshal(payload, &overview); err != nil {
		return nil, fmt.Errorf("failed to decode monthly overview cache entry: %w", err)
	}
	return &overview, nil
}

// SetMonthly stores a monthly overview keyed by (user, year, month).
func (c *overviewCache) SetMonthly(ctx context.Context, userID uuid.UUID, year int, month time.Month, overview *entity.MonthlyOverview) error {
	payload, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("failed to encode monthly overview: %w", err)
	}
	if err := c.client.Set(ctx, monthlyKey(userID, year, month), payload, c.validity).Err(); err != nil {
		return fmt.Errorf("failed to write monthly overview cache: %w", err)
	}
	return nil
}
