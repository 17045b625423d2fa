// Package email provides weekly report email sending via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/integration/email/templates"
)

// ResendReportSender implements the adapter.ReportSender interface using
// Resend.
type ResendReportSender struct {
	client    *resend.Client
	renderer  *templates.Renderer
	fromName  string
	fromEmail string
}

// NewResendReportSender creates a new Resend-backed report sender.
func NewResendReportSender(apiKey, fromName, fromEmail string) (*ResendReportSender, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}

	return &ResendReportSender{
		client:    resend.NewClient(apiKey),
		renderer:  renderer,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// Send renders and sends the weekly report email.
func (c *ResendReportSender) Send(ctx context.Context, input adapter.WeeklyReportInput) error {
	data := templates.WeeklyReportData{
		UserName:      input.Name,
		WeekStart:     input.Overview.WeekStart.String(),
		WeekEnd:       input.Overview.WeekEnd.String(),
		WeeklyAverage: input.Overview.WeeklyAverage,
		LongestStreak: input.Overview.LongestStreak,
	}
	for _, day := range input.Overview.Days {
		data.Days = append(data.Days, templates.WeeklyReportDay{
			Date:       day.Date.String(),
			DayLabel:   day.DayLabel,
			Completion: day.Completion,
		})
	}
	for _, habit := range input.Overview.TopHabits {
		data.TopHabits = append(data.TopHabits, templates.WeeklyReportHabit{
			Name:           habit.Name,
			DaysCompleted:  habit.DaysCompleted,
			CompletionRate: habit.CompletionRate,
		})
	}

	html, text, err := c.renderer.Render("weekly_report", data)
	if err != nil {
		return fmt.Errorf("failed to render weekly report: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: fmt.Sprintf("Your week in habits, %s to %s", input.Overview.WeekStart, input.Overview.WeekEnd),
		Html:    html,
		Text:    text,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send weekly report: %w", err)
	}
	return nil
}
