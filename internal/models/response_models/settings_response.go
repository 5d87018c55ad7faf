package response_models

type SettingsResponse struct {
	CardioDistanceUnit string `json:"cardio_distance_unit"`
	SwimDistanceUnit   string `json:"swim_distance_unit"`
	WeeklyGoalMinutes  int    `json:"weekly_goal_minutes"`
}
