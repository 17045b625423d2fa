// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habitflow/backend/config"
	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/auth"
	"github.com/habitflow/backend/internal/application/usecase/habit"
	"github.com/habitflow/backend/internal/application/usecase/insight"
	"github.com/habitflow/backend/internal/application/usecase/overview"
	"github.com/habitflow/backend/internal/application/usecase/progress"
	"github.com/habitflow/backend/internal/application/usecase/snapshot"
	"github.com/habitflow/backend/internal/application/usecase/streak"
	"github.com/habitflow/backend/internal/infra/server/router"
	"github.com/habitflow/backend/internal/integration/adapters"
	"github.com/habitflow/backend/internal/integration/cache"
	"github.com/habitflow/backend/internal/integration/email"
	"github.com/habitflow/backend/internal/integration/entrypoint/controller"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
	"github.com/habitflow/backend/internal/integration/persistence"
	"github.com/habitflow/backend/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
	Worker *scheduler.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	completionRepo := persistence.NewCompletionRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	insightService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	overviewCache := cache.NewOverviewCache(redisClient, cfg.Cache.Validity)

	var reportSender adapter.ReportSender
	if cfg.Email.ResendAPIKey != "" {
		sender, err := email.NewResendReportSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if err != nil {
			slog.Error("Failed to initialize report sender, weekly emails disabled", "error", err)
		} else {
			reportSender = sender
		}
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create snapshot use cases
	snapshotHabitUseCase := snapshot.NewSnapshotHabitUseCase(habitRepo, completionRepo, snapshotRepo)
	snapshotAllUseCase := snapshot.NewSnapshotAllUseCase(habitRepo, snapshotHabitUseCase)
	archiveOnDeletionUseCase := snapshot.NewArchiveOnDeletionUseCase(snapshotHabitUseCase, snapshotRepo)

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo)
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo)
	archiveHabitUseCase := habit.NewArchiveHabitUseCase(habitRepo, archiveOnDeletionUseCase)

	// Create progress use cases
	updateProgressUseCase := progress.NewUpdateProgressUseCase(habitRepo, completionRepo, snapshotHabitUseCase)
	getDailyProgressUseCase := progress.NewGetDailyProgressUseCase(habitRepo, completionRepo)

	// Create overview use cases
	getWeeklyUseCase := overview.NewGetWeeklyUseCase(habitRepo, completionRepo, overviewCache, cfg.Cache.Validity)
	getMonthlyUseCase := overview.NewGetMonthlyUseCase(habitRepo, completionRepo, overviewCache, cfg.Cache.Validity)
	getHeatmapUseCase := overview.NewGetHeatmapUseCase(habitRepo, completionRepo)

	// Create streak and insight use cases
	listStreaksUseCase := streak.NewListStreaksUseCase(snapshotRepo)
	weeklyInsightUseCase := insight.NewGenerateWeeklyInsightUseCase(getWeeklyUseCase, insightService)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		updateHabitUseCase,
		archiveHabitUseCase,
	)

	progressController := controller.NewProgressController(
		updateProgressUseCase,
		getDailyProgressUseCase,
	)

	overviewController := controller.NewOverviewController(
		getWeeklyUseCase,
		getMonthlyUseCase,
		getHeatmapUseCase,
	)

	streakController := controller.NewStreakController(listStreaksUseCase)
	insightController := controller.NewInsightController(weeklyInsightUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		habitController,
		progressController,
		overviewController,
		streakController,
		insightController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create the daily snapshot worker
	var worker *scheduler.Worker
	if cfg.Snapshot.WorkerEnabled {
		worker = scheduler.NewWorker(
			userRepo,
			snapshotAllUseCase,
			getWeeklyUseCase,
			reportSender,
			scheduler.WorkerConfig{PollInterval: cfg.Snapshot.PollInterval},
		)
	}

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
		Worker: worker,
	}
}
