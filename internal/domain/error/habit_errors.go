// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrHabitAlreadyArchived is returned when attempting to archive an already archived habit.
	ErrHabitAlreadyArchived = errors.New("habit is already archived")

	// ErrInvalidTaskType is returned when the habit task type is invalid.
	ErrInvalidTaskType = errors.New("invalid task type")

	// ErrInvalidGoal is returned when the weekly goal is outside 0..7 days.
	ErrInvalidGoal = errors.New("invalid weekly goal")

	// ErrUnauthorizedHabitAccess is returned when the habit does not belong to the user.
	ErrUnauthorizedHabitAccess = errors.New("unauthorized access to habit")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound          HabitErrorCode = "HAB-010001"
	ErrCodeHabitAlreadyArchived   HabitErrorCode = "HAB-010002"
	ErrCodeInvalidTaskType        HabitErrorCode = "HAB-010003"
	ErrCodeInvalidGoal            HabitErrorCode = "HAB-010004"
	ErrCodeMissingHabitFields     HabitErrorCode = "HAB-010005"
	ErrCodeUnauthorizedHabit      HabitErrorCode = "HAB-010006"
	ErrCodeInvalidHabitStartDate  HabitErrorCode = "HAB-010007"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
