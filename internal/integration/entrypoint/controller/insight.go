package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/backend/internal/application/usecase/insight"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles AI coaching summary endpoints.
type InsightController struct {
	weeklyUseCase *insight.GenerateWeeklyInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(weeklyUseCase *insight.GenerateWeeklyInsightUseCase) *InsightController {
	return &InsightController{
		weeklyUseCase: weeklyUseCase,
	}
}

// GetWeekly handles GET /insights/weekly requests.
func (c *InsightController) GetWeekly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := insight.GenerateWeeklyInsightInput{
		UserID: userID,
	}

	if weekStr := ctx.Query("week_start"); weekStr != "" {
		weekStart, err := valueobject.ParseDay(weekStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid week start format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidWeekStart),
			})
			return
		}
		input.WeekStart = weekStart
	}

	output, err := c.weeklyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WeeklyInsightResponse{
		Summary: output.Summary,
	})
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		status := http.StatusServiceUnavailable
		if insightErr.Code == domainerror.ErrCodeInsightsNotConfigured {
			status = http.StatusNotImplemented
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	var overviewErr *domainerror.OverviewError
	if errors.As(err, &overviewErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: overviewErr.Message,
			Code:  string(overviewErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
