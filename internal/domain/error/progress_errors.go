// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Progress-update domain errors. Validation failures are rejected before
// any computation or mutation runs.
var (
	// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTimePeriod is returned when the period is not one of morning, afternoon, evening, night.
	ErrInvalidTimePeriod = errors.New("invalid time period")

	// ErrInvalidPercentage is returned when the percentage is not one of 0, 10, 20, 50, 80, 100.
	ErrInvalidPercentage = errors.New("invalid percentage value")
)

// ProgressErrorCode defines error codes for progress errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDate       ProgressErrorCode = "PRG-010001"
	ErrCodeInvalidTimePeriod ProgressErrorCode = "PRG-010002"
	ErrCodeInvalidPercentage ProgressErrorCode = "PRG-010003"
	ErrCodeMissingProgress   ProgressErrorCode = "PRG-010004"
)

// ProgressError represents a progress error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
