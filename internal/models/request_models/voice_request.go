package request_models

type ReanalyzeRequest struct {
	WorkoutID     string `json:"workout_id" binding:"required"`
	Transcription string `json:"transcription" binding:"required"`
}

type UpdateAnalysisRequest struct {
	WorkoutID string `json:"workout_id" binding:"required"`
	Analysis  string `json:"analysis" binding:"required"`
}
