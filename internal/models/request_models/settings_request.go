package request_models

type UpdateSettingsRequest struct {
	CardioDistanceUnit string `json:"cardio_distance_unit" binding:"required"`
	SwimDistanceUnit   string `json:"swim_distance_unit" binding:"required"`
	WeeklyGoalMinutes  int    `json:"weekly_goal_minutes"`
}
