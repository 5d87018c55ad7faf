package response_models

type VoiceUploadResponse struct {
	WorkoutID     string          `json:"workout_id"`
	Transcript    string          `json:"transcript"`
	Analysis      WorkoutAnalysis `json:"analysis"`
	Summary       string          `json:"summary"`
	AnalysisError string          `json:"analysis_error,omitempty"`
}

type VoiceParseResponse struct {
	Transcript     string       `json:"transcript"`
	Sets           []WorkoutSet `json:"sets"`
	Confidence     float64      `json:"confidence"`
	RequiresReview bool         `json:"requires_review"`
}
