// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habitflow/backend/internal/integration/entrypoint/controller"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	habitController    *controller.HabitController
	progressController *controller.ProgressController
	overviewController *controller.OverviewController
	streakController   *controller.StreakController
	insightController  *controller.InsightController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	habitController *controller.HabitController,
	progressController *controller.ProgressController,
	overviewController *controller.OverviewController,
	streakController *controller.StreakController,
	insightController *controller.InsightController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		habitController:    habitController,
		progressController: progressController,
		overviewController: overviewController,
		streakController:   streakController,
		insightController:  insightController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Habit routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Archive)

				// Progress updates are nested under the habit they belong to
				if r.progressController != nil {
					habits.POST("/:id/progress", r.progressController.Update)
				}
			}
		}

		// Daily progress log routes (require authentication)
		if r.progressController != nil && r.authMiddleware != nil {
			progress := v1.Group("/progress")
			progress.Use(r.authMiddleware.Authenticate())
			{
				progress.GET("", r.progressController.GetDaily)
			}
		}

		// Overview routes (require authentication)
		if r.overviewController != nil && r.authMiddleware != nil {
			overview := v1.Group("/overview")
			overview.Use(r.authMiddleware.Authenticate())
			{
				overview.GET("/weekly", r.overviewController.GetWeekly)
				overview.GET("/monthly", r.overviewController.GetMonthly)
				overview.GET("/heatmap", r.overviewController.GetHeatmap)
			}
		}

		// Streak routes (require authentication)
		if r.streakController != nil && r.authMiddleware != nil {
			streaks := v1.Group("/streaks")
			streaks.Use(r.authMiddleware.Authenticate())
			{
				streaks.GET("", r.streakController.List)
			}
		}

		// Insight routes (require authentication)
		if r.insightController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("/weekly", r.insightController.GetWeekly)
			}
		}
	}
}
