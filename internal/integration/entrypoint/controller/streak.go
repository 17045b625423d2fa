package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/backend/internal/application/usecase/streak"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// StreakController handles streak listing endpoints.
type StreakController struct {
	listUseCase *streak.ListStreaksUseCase
}

// NewStreakController creates a new streak controller instance.
func NewStreakController(listUseCase *streak.ListStreaksUseCase) *StreakController {
	return &StreakController{
		listUseCase: listUseCase,
	}
}

// List handles GET /streaks requests. The archived query parameter switches
// to the archived streak history view; sort_by selects the ordering.
func (c *StreakController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := streak.ListStreaksInput{
		UserID:   userID,
		Archived: ctx.Query("archived") == "true",
		SortBy:   streak.SortBy(ctx.DefaultQuery("sort_by", string(streak.SortByCurrentStreak))),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve streaks",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStreakListResponse(output.Streaks))
}
