// Package insight contains AI coaching summary use cases.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/overview"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/domain/valueobject"
)

// GenerateWeeklyInsightInput represents the input for generating a weekly
// coaching summary.
type GenerateWeeklyInsightInput struct {
	UserID    uuid.UUID
	WeekStart valueobject.Day // Zero means the current week
}

// GenerateWeeklyInsightOutput represents the output of generating a weekly
// coaching summary.
type GenerateWeeklyInsightOutput struct {
	Summary string
}

// GenerateWeeklyInsightUseCase builds a weekly overview and feeds it to the
// AI provider for a short coaching summary.
type GenerateWeeklyInsightUseCase struct {
	getWeekly      *overview.GetWeeklyUseCase
	insightService adapter.InsightService
}

// NewGenerateWeeklyInsightUseCase creates a new GenerateWeeklyInsightUseCase instance.
func NewGenerateWeeklyInsightUseCase(
	getWeekly *overview.GetWeeklyUseCase,
	insightService adapter.InsightService,
) *GenerateWeeklyInsightUseCase {
	return &GenerateWeeklyInsightUseCase{
		getWeekly:      getWeekly,
		insightService: insightService,
	}
}

// Execute generates the coaching summary.
func (uc *GenerateWeeklyInsightUseCase) Execute(ctx context.Context, input GenerateWeeklyInsightInput) (*GenerateWeeklyInsightOutput, error) {
	if !uc.insightService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightsNotConfigured,
			"insights service is not configured",
			domainerror.ErrInsightsNotConfigured,
		)
	}

	weekly, err := uc.getWeekly.Execute(ctx, overview.GetWeeklyInput{
		UserID:    input.UserID,
		WeekStart: input.WeekStart,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly overview: %w", err)
	}

	summary, err := uc.insightService.WeeklySummary(ctx, weekly.Overview)
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightsUnavailable,
			"failed to generate weekly insight",
			err,
		)
	}

	return &GenerateWeeklyInsightOutput{Summary: summary}, nil
}
