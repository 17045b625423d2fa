// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightsNotConfigured is returned when no AI provider key is configured.
	ErrInsightsNotConfigured = errors.New("insights service is not configured")
)

// InsightErrorCode defines error codes for insight errors.
type InsightErrorCode string

const (
	ErrCodeInsightsNotConfigured InsightErrorCode = "INS-010001"
	ErrCodeInsightsUnavailable   InsightErrorCode = "INS-020001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
