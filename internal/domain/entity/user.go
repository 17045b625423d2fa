// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the HabitFlow system. Every other entity is
// exclusively scoped to one owning user.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	WeeklyReports bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		PasswordHash:  passwordHash,
		WeeklyReports: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
