package response_models

// WorkoutSet is one parsed segment of a structured analysis.
type WorkoutSet struct {
	Type     string  `json:"type"`
	Distance float64 `json:"distance,omitempty"`
	Stroke   string  `json:"stroke,omitempty"`
	Interval string  `json:"interval,omitempty"`
}

// WorkoutAnalysis is the tagged variant unifying the two historical payload
// shapes: consumers switch on Kind instead of probing optional fields.
type WorkoutAnalysis struct {
	Kind     string       `json:"kind"`
	Markdown string       `json:"markdown,omitempty"`
	Sets     []WorkoutSet `json:"sets,omitempty"`
	EditedAt int64        `json:"edited_at,omitempty"`
}

type WorkoutResponse struct {
	ID              string           `json:"id"`
	ActivityType    string           `json:"activity_type"`
	DurationMinutes int              `json:"duration_minutes"`
	Rating          int              `json:"rating"`
	Date            string           `json:"date"`
	Distance        *float64         `json:"distance,omitempty"`
	DistanceUnit    string           `json:"distance_unit,omitempty"`
	Transcription   string           `json:"transcription,omitempty"`
	Analysis        *WorkoutAnalysis `json:"analysis,omitempty"`
	CreatedAt       int64            `json:"created_at"`
	UpdatedAt       int64            `json:"updated_at"`
}

type SimilarWorkout struct {
	WorkoutID    string   `json:"workout_id"`
	ActivityType string   `json:"activity_type"`
	Keywords     []string `json:"keywords,omitempty"`
}
