// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habitflow/backend/internal/application/usecase/progress"
	"github.com/habitflow/backend/internal/domain/entity"
)

// UpdateProgressRequest represents the request body for recording progress.
type UpdateProgressRequest struct {
	Date       string `json:"date" binding:"required"`
	Period     string `json:"period" binding:"required,oneof=morning afternoon evening night"`
	Percentage int    `json:"percentage"`
}

// CompletionEntryResponse represents one day's period percentages.
type CompletionEntryResponse struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Morning   int    `json:"morning"`
	Afternoon int    `json:"afternoon"`
	Evening   int    `json:"evening"`
	Night     int    `json:"night"`
	Complete  bool   `json:"complete"`
}

// UpdateProgressResponse represents the response for recording progress.
type UpdateProgressResponse struct {
	Entry CompletionEntryResponse `json:"entry"`
}

// HabitProgressResponse pairs a habit with its entry for one day.
type HabitProgressResponse struct {
	Habit HabitResponse            `json:"habit"`
	Entry *CompletionEntryResponse `json:"entry,omitempty"`
}

// DailyProgressResponse represents the response for one day's log.
type DailyProgressResponse struct {
	Date   string                  `json:"date"`
	Habits []HabitProgressResponse `json:"habits"`
}

// ToCompletionEntryResponse converts a domain entry to its DTO.
func ToCompletionEntryResponse(e *entity.CompletionEntry) CompletionEntryResponse {
	return CompletionEntryResponse{
		HabitID:   e.HabitID.String(),
		Date:      e.Date.String(),
		Morning:   e.Morning,
		Afternoon: e.Afternoon,
		Evening:   e.Evening,
		Night:     e.Night,
		Complete:  e.IsComplete(),
	}
}

// ToDailyProgressResponse converts the daily log output to its DTO.
func ToDailyProgressResponse(output *progress.GetDailyProgressOutput) DailyProgressResponse {
	response := DailyProgressResponse{
		Date:   output.Date.String(),
		Habits: make([]HabitProgressResponse, len(output.Habits)),
	}
	for i, hp := range output.Habits {
		response.Habits[i] = HabitProgressResponse{Habit: ToHabitResponse(hp.Habit)}
		if hp.Entry != nil {
			entry := ToCompletionEntryResponse(hp.Entry)
			response.Habits[i].Entry = &entry
		}
	}
	return response
}
