// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Overview domain errors.
var (
	// ErrInvalidMonth is returned when the month is outside 1..12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidYear is returned when the year is implausible.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidDateRange is returned when a range's end precedes its start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// OverviewErrorCode defines error codes for overview errors.
// Format: OVW-XXYYYY where XX is category and YYYY is specific error.
type OverviewErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth     OverviewErrorCode = "OVW-010001"
	ErrCodeInvalidYear      OverviewErrorCode = "OVW-010002"
	ErrCodeInvalidWeekStart OverviewErrorCode = "OVW-010003"
	ErrCodeInvalidRange     OverviewErrorCode = "OVW-010004"
)

// OverviewError represents an overview error with code and message.
type OverviewError struct {
	Code    OverviewErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OverviewError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OverviewError) Unwrap() error {
	return e.Err
}

// NewOverviewError creates a new OverviewError with the given code and message.
func NewOverviewError(code OverviewErrorCode, message string, err error) *OverviewError {
	return &OverviewError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
