package dto

// WeeklyInsightResponse represents the AI coaching summary for a week.
type WeeklyInsightResponse struct {
	Summary string `json:"summary"`
}
