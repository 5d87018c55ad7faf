package request_models

type CreateWorkoutRequest struct {
	ActivityType    string   `json:"activity_type" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Rating          int      `json:"rating"`
	Date            string   `json:"date" binding:"required"`
	Distance        *float64 `json:"distance,omitempty"`
	DistanceUnit    string   `json:"distance_unit,omitempty"`
}

// UpdateWorkoutRequest replaces all user-editable fields (last write wins).
type UpdateWorkoutRequest struct {
	ActivityType    string   `json:"activity_type" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Rating          int      `json:"rating"`
	Date            string   `json:"date" binding:"required"`
	Distance        *float64 `json:"distance,omitempty"`
	DistanceUnit    string   `json:"distance_unit,omitempty"`
}
