package response_models

type WeeklyStats struct {
	Count         int     `json:"count"`
	TotalMinutes  int     `json:"total_minutes"`
	AverageRating float64 `json:"average_rating"`
}

type StatsSummary struct {
	CurrentStreakDays int         `json:"current_streak_days"`
	Week              WeeklyStats `json:"week"`
	WeeklyGoalMinutes int         `json:"weekly_goal_minutes"`
}
