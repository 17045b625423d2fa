package dto

import (
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// StreakResponse represents a streak snapshot in API responses.
type StreakResponse struct {
	HabitID           string `json:"habit_id"`
	HabitName         string `json:"habit_name"`
	HabitColor        string `json:"habit_color"`
	HabitCategory     string `json:"habit_category"`
	SnapshotDate      string `json:"snapshot_date"`
	CurrentStreak     int    `json:"current_streak"`
	LongestStreak     int    `json:"longest_streak"`
	CompletionRate    int    `json:"completion_rate"`
	TotalCompletions  int    `json:"total_completions"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	StreakType        string `json:"streak_type"`
	IsArchived        bool   `json:"is_archived"`
	ArchivedAt        string `json:"archived_at,omitempty"`
}

// StreakListResponse represents a list of streak snapshots in API responses.
type StreakListResponse struct {
	Streaks []StreakResponse `json:"streaks"`
	Total   int              `json:"total"`
}

// ToStreakResponse converts a streak snapshot entity to a StreakResponse DTO.
func ToStreakResponse(snapshot *entity.StreakSnapshot) StreakResponse {
	archivedAt := ""
	if snapshot.ArchivedAt != nil {
		archivedAt = snapshot.ArchivedAt.Format(time.RFC3339)
	}

	return StreakResponse{
		HabitID:           snapshot.HabitID.String(),
		HabitName:         snapshot.HabitName,
		HabitColor:        snapshot.HabitColor,
		HabitCategory:     snapshot.HabitCategory,
		SnapshotDate:      snapshot.SnapshotDate.String(),
		CurrentStreak:     snapshot.CurrentStreak,
		LongestStreak:     snapshot.LongestStreak,
		CompletionRate:    snapshot.CompletionRate,
		TotalCompletions:  snapshot.TotalCompletions,
		LastCompletedDate: snapshot.LastCompletedDate.String(),
		StreakType:        string(snapshot.StreakType),
		IsArchived:        snapshot.IsArchived,
		ArchivedAt:        archivedAt,
	}
}

// ToStreakListResponse converts a slice of streak snapshots to a
// StreakListResponse DTO.
func ToStreakListResponse(snapshots []*entity.StreakSnapshot) StreakListResponse {
	streaks := make([]StreakResponse, len(snapshots))
	for i, snapshot := range snapshots {
		streaks[i] = ToStreakResponse(snapshot)
	}

	return StreakListResponse{
		Streaks: streaks,
		Total:   len(streaks),
	}
}
