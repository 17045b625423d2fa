// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/habitflow/backend/internal/domain/entity"
)

// GeminiService implements the adapter.InsightService interface using
// Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// WeeklySummary turns a weekly overview into a short coaching summary.
func (s *GeminiService) WeeklySummary(ctx context.Context, overview *entity.WeeklyOverview) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.6)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(overview)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	summary, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return summary, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(overview *entity.WeeklyOverview) string {
	var sb strings.Builder

	sb.WriteString(`You are an encouraging habit coach. Given one week of a user's habit data, write a short summary of how their week went and one concrete, actionable suggestion for next week.

RULES:
- At most 3 sentences, plain text, no markdown, no emoji
- Be specific: mention the strongest habit or the weakest day by name
- Never shame the user; frame misses as opportunities
- If the week is empty, suggest starting with a single small habit

WEEK `)
	sb.WriteString(fmt.Sprintf("%s to %s:\n", overview.WeekStart, overview.WeekEnd))
	sb.WriteString(fmt.Sprintf("- Average daily completion: %.1f%%\n", overview.WeeklyAverage))
	sb.WriteString(fmt.Sprintf("- Longest streak in the week: %d days\n", overview.LongestStreak))

	sb.WriteString("- Per-day completion:\n")
	for _, day := range overview.Days {
		sb.WriteString(fmt.Sprintf("  %s (%s): %d%%\n", day.Date, day.DayLabel, day.Completion))
	}

	if len(overview.TopHabits) > 0 {
		sb.WriteString("- Top habits:\n")
		for _, habit := range overview.TopHabits {
			sb.WriteString(fmt.Sprintf("  %s: %d of %d days (%d%%)\n",
				habit.Name, habit.DaysCompleted, len(overview.Days), habit.CompletionRate))
		}
	}

	return sb.String()
}

// parseResponse extracts the text content from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return textContent, nil
}
