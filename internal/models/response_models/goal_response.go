package response_models

type EventResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Discoverable bool   `json:"discoverable"`
	ShareToken   string `json:"share_token,omitempty"`
}

type GoalResponse struct {
	ID              string        `json:"id"`
	Event           EventResponse `json:"event"`
	WeeklyFrequency int           `json:"weekly_frequency"`
	TargetWorkouts  int           `json:"target_workouts"`
	TargetHours     float64       `json:"target_hours"`
	CompletedCount  int           `json:"completed_count"`
	CompletedHours  float64       `json:"completed_hours"`
}
