// Package streak contains streak computation and listing use cases.
package streak

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
)

// SortBy selects the ordering of a streak listing.
type SortBy string

const (
	SortByCurrentStreak SortBy = "current"
	SortByLongestStreak SortBy = "longest"
)

// ListStreaksInput represents the input for listing streaks.
type ListStreaksInput struct {
	UserID   uuid.UUID
	Archived bool
	SortBy   SortBy
}

// ListStreaksOutput represents the output of listing streaks.
type ListStreaksOutput struct {
	Streaks []*entity.StreakSnapshot
}

// ListStreaksUseCase lists the latest streak snapshot per habit, either for
// active habits or for the "archived streaks" history view.
type ListStreaksUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewListStreaksUseCase creates a new ListStreaksUseCase instance.
func NewListStreaksUseCase(snapshotRepo adapter.SnapshotRepository) *ListStreaksUseCase {
	return &ListStreaksUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute retrieves the streak listing sorted by current or longest streak
// descending.
func (uc *ListStreaksUseCase) Execute(ctx context.Context, input ListStreaksInput) (*ListStreaksOutput, error) {
	snapshots, err := uc.snapshotRepo.FindLatestPerHabit(ctx, input.UserID, input.Archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list streak snapshots: %w", err)
	}

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = SortByCurrentStreak
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		if sortBy == SortByLongestStreak {
			return snapshots[i].LongestStreak > snapshots[j].LongestStreak
		}
		return snapshots[i].CurrentStreak > snapshots[j].CurrentStreak
	})

	return &ListStreaksOutput{Streaks: snapshots}, nil
}
