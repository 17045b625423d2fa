// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=100"`
	Category  string   `json:"category,omitempty" binding:"omitempty,max=50"`
	Color     string   `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Goal      int      `json:"goal" binding:"omitempty,min=0,max=7"`
	TaskType  string   `json:"task_type,omitempty" binding:"omitempty,oneof=recurring single_day"`
	Tags      []string `json:"tags,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Category *string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Color    *string  `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Goal     *int     `json:"goal,omitempty" binding:"omitempty,min=0,max=7"`
	Tags     []string `json:"tags,omitempty"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category,omitempty"`
	Color      string     `json:"color"`
	Goal       int        `json:"goal"`
	TaskType   string     `json:"task_type"`
	Tags       []string   `json:"tags,omitempty"`
	IsActive   bool       `json:"is_active"`
	StartDate  string     `json:"start_date"`
	Position   int        `json:"position"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:         h.ID.String(),
		Name:       h.Name,
		Category:   h.Category,
		Color:      h.Color,
		Goal:       h.Goal,
		TaskType:   string(h.TaskType),
		Tags:       h.Tags,
		IsActive:   h.IsActive,
		StartDate:  h.StartDate.String(),
		Position:   h.Position,
		ArchivedAt: h.ArchivedAt,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

// ToHabitListResponse converts a slice of habits to a HabitListResponse DTO.
func ToHabitListResponse(habits []*entity.Habit) HabitListResponse {
	response := HabitListResponse{Habits: make([]HabitResponse, len(habits))}
	for i, h := range habits {
		response.Habits[i] = ToHabitResponse(h)
	}
	return response
}
