package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/backend/internal/application/usecase/overview"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// OverviewController handles aggregate overview endpoints.
type OverviewController struct {
	weeklyUseCase  *overview.GetWeeklyUseCase
	monthlyUseCase *overview.GetMonthlyUseCase
	heatmapUseCase *overview.GetHeatmapUseCase
}

// NewOverviewController creates a new overview controller instance.
func NewOverviewController(
	weeklyUseCase *overview.GetWeeklyUseCase,
	monthlyUseCase *overview.GetMonthlyUseCase,
	heatmapUseCase *overview.GetHeatmapUseCase,
) *OverviewController {
	return &OverviewController{
		weeklyUseCase:  weeklyUseCase,
		monthlyUseCase: monthlyUseCase,
		heatmapUseCase: heatmapUseCase,
	}
}

// GetWeekly handles GET /overview/weekly requests. The week_start query
// parameter selects the week; it defaults to the current week.
func (c *OverviewController) GetWeekly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := overview.GetWeeklyInput{
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
		c.handleOverviewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyOverviewResponse(output.Overview, output.Cached))
}

// GetMonthly handles GET /overview/monthly requests. The year and month
// query parameters select the month; they default to the current month.
func (c *OverviewController) GetMonthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := overview.GetMonthlyInput{
		UserID: userID,
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = year
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.Month = time.Month(month)
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOverviewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyOverviewResponse(output.Overview, output.Cached))
}

// GetHeatmap handles GET /overview/heatmap requests. Both start_date and
// end_date query parameters are required.
func (c *OverviewController) GetHeatmap(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, err := valueobject.ParseDay(ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRange),
		})
		return
	}

	endDate, err := valueobject.ParseDay(ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRange),
		})
		return
	}

	input := overview.GetHeatmapInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.heatmapUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOverviewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHeatmapResponse(output.Days))
}

// handleOverviewError handles overview errors and returns appropriate HTTP responses.
func (c *OverviewController) handleOverviewError(ctx *gin.Context, err error) {
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
