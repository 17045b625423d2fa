package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/usecase/habit"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints.
type HabitController struct {
	listUseCase    *habit.ListHabitsUseCase
	createUseCase  *habit.CreateHabitUseCase
	updateUseCase  *habit.UpdateHabitUseCase
	archiveUseCase *habit.ArchiveHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	archiveUseCase *habit.ArchiveHabitUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		archiveUseCase: archiveUseCase,
	}
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := habit.ListHabitsInput{
		UserID:          userID,
		IncludeArchived: ctx.Query("include_archived") == "true",
	}

	// Optional date filter narrows the list to habits visible on that day
	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := valueobject.ParseDay(dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve habits",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.CreateHabitInput{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Goal:     req.Goal,
		TaskType: entity.TaskType(req.TaskType),
		Tags:     req.Tags,
	}

	if req.StartDate != "" {
		startDate, err := valueobject.ParseDay(req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidHabitStartDate),
			})
			return
		}
		input.StartDate = startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
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

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.UpdateHabitInput{
		UserID:   userID,
		HabitID:  habitID,
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Goal:     req.Goal,
		Tags:     req.Tags,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Archive handles DELETE /habits/:id requests. Habits are soft-archived so
// their streak history survives.
func (c *HabitController) Archive(ctx *gin.Context) {
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

	input := habit.ArchiveHabitInput{
		UserID:  userID,
		HabitID: habitID,
	}

	if err := c.archiveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Habit archived",
	})
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		ctx.JSON(c.getStatusCodeForHabitError(habitErr.Code), dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedHabit:
		return http.StatusForbidden
	case domainerror.ErrCodeHabitAlreadyArchived:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTaskType,
		domainerror.ErrCodeInvalidGoal,
		domainerror.ErrCodeMissingHabitFields,
		domainerror.ErrCodeInvalidHabitStartDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
