package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/usecase/progress"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// ProgressController handles completion log endpoints.
type ProgressController struct {
	updateUseCase   *progress.UpdateProgressUseCase
	getDailyUseCase *progress.GetDailyProgressUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	updateUseCase *progress.UpdateProgressUseCase,
	getDailyUseCase *progress.GetDailyProgressUseCase,
) *ProgressController {
	return &ProgressController{
		updateUseCase:   updateUseCase,
		getDailyUseCase: getDailyUseCase,
	}
}

// Update handles POST /habits/:id/progress requests.
func (c *ProgressController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProgress),
		})
		return
	}

	input := progress.UpdateProgressInput{
		UserID:     userID,
		HabitID:    habitID,
		Date:       req.Date,
		Period:     entity.TimePeriod(req.Period),
		Percentage: req.Percentage,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateProgressResponse{
		Entry: dto.ToCompletionEntryResponse(output.Entry),
	})
}

// GetDaily handles GET /progress requests. The date query parameter selects
// the day; it defaults to today.
func (c *ProgressController) GetDaily(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := progress.GetDailyProgressInput{
		UserID: userID,
		Date:   ctx.Query("date"),
	}

	output, err := c.getDailyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyProgressResponse(output))
}

// handleProgressError handles progress errors and returns appropriate HTTP responses.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		status := http.StatusBadRequest
		switch habitErr.Code {
		case domainerror.ErrCodeHabitNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeUnauthorizedHabit:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
