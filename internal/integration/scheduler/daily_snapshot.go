// Package scheduler runs the daily snapshot and weekly report jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/overview"
	"github.com/habitflow/backend/internal/application/usecase/snapshot"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// Worker snapshots every user's streak state once per calendar day, and on
// Mondays mails out last week's report to users who opted in. Per-user
// failures are logged and skipped so one broken account never stalls the
// batch.
type Worker struct {
	userRepo     adapter.UserRepository
	snapshotAll  *snapshot.SnapshotAllUseCase
	getWeekly    *overview.GetWeeklyUseCase
	reportSender adapter.ReportSender // nil disables weekly report emails
	pollInterval time.Duration
	now          func() time.Time

	lastRun valueobject.Day
}

// WorkerConfig holds configuration for the snapshot worker.
type WorkerConfig struct {
	PollInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 15 * time.Minute,
	}
}

// NewWorker creates a new snapshot worker.
func NewWorker(
	userRepo adapter.UserRepository,
	snapshotAll *snapshot.SnapshotAllUseCase,
	getWeekly *overview.GetWeeklyUseCase,
	reportSender adapter.ReportSender,
	config WorkerConfig,
) *Worker {
	return &Worker{
		userRepo:     userRepo,
		snapshotAll:  snapshotAll,
		getWeekly:    getWeekly,
		reportSender: reportSender,
		pollInterval: config.PollInterval,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (w *Worker) WithClock(now func() time.Time) *Worker {
	w.now = now
	return w
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Snapshot worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker
	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Snapshot worker shutting down")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce runs the daily batch if it has not run on the current calendar
// day yet. The day boundary follows local time, matching how completion
// dates are recorded.
func (w *Worker) RunOnce(ctx context.Context) {
	today := valueobject.DayOf(w.now())
	if today == w.lastRun {
		return
	}

	users, err := w.userRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to list users for daily snapshot", "error", err)
		return
	}

	slog.Info("Running daily snapshot batch", "date", today, "users", len(users))

	sendReports := w.reportSender != nil && today.Weekday() == time.Monday

	for _, user := range users {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := w.snapshotAll.Execute(ctx, snapshot.SnapshotAllInput{
			UserID: user.ID,
			Date:   today,
		})
		if err != nil {
			slog.Error("Daily snapshot failed for user", "user_id", user.ID, "error", err)
			continue
		}
		if out.Failed > 0 {
			slog.Warn("Daily snapshot completed with failures",
				"user_id", user.ID,
				"snapshotted", out.Snapshotted,
				"failed", out.Failed,
			)
		}

		if sendReports && user.WeeklyReports {
			w.sendWeeklyReport(ctx, user, today)
		}
	}

	w.lastRun = today
}

// sendWeeklyReport builds last week's overview and mails it. Failures are
// logged; the report is best effort.
func (w *Worker) sendWeeklyReport(ctx context.Context, user *entity.User, today valueobject.Day) {
	lastWeekStart := valueobject.WeekStartOf(today).AddDays(-7)

	weekly, err := w.getWeekly.Execute(ctx, overview.GetWeeklyInput{
		UserID:    user.ID,
		WeekStart: lastWeekStart,
	})
	if err != nil {
		slog.Error("Failed to build weekly report overview", "user_id", user.ID, "error", err)
		return
	}

	if err := w.reportSender.Send(ctx, adapter.WeeklyReportInput{
		To:       user.Email,
		Name:     user.Name,
		Overview: weekly.Overview,
	}); err != nil {
		slog.Error("Failed to send weekly report", "user_id", user.ID, "error", err)
	}
}
