// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habitflow/backend/internal/domain/entity"
)

// WeeklyReportInput represents the input for sending a weekly report email.
type WeeklyReportInput struct {
	To       string
	Name     string
	Overview *entity.WeeklyOverview
}

// ReportSender defines the interface for sending weekly report emails via
// an external provider.
type ReportSender interface {
	// Send sends the weekly report email (e.g., via Resend).
	Send(ctx context.Context, input WeeklyReportInput) error
}
