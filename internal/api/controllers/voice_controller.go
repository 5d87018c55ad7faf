package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlog/internal/models/request_models"
	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

// maxAudioBytes caps uploaded voice notes at 25MB, matching the Whisper
// request limit.
const maxAudioBytes = 25 << 20

type VoiceController struct {
	voiceService services.VoiceServiceInterface
}

func NewVoiceController(voiceService services.VoiceServiceInterface) *VoiceController {
	return &VoiceController{
		voiceService: voiceService,
	}
}

func readAudioFile(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing audio file")
		return nil, false
	}
	if fileHeader.Size > maxAudioBytes {
		utils.RespondError(c, http.StatusBadRequest, "Audio file too large")
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable audio file")
		return nil, false
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable audio file")
		return nil, false
	}
	return audio, true
}

// Upload godoc
// @Summary Attach a voice note to a workout
// @Description Transcribes the audio, runs the analysis and stores both on the workout
// @Tags Voice
// @Accept multipart/form-data
// @Produce json
// @Param workout_id formData string true "Workout ID"
// @Param audio formData file true "Audio recording"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /voice/upload [post]
func (v *VoiceController) Upload(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	workoutID, err := uuid.Parse(c.PostForm("workout_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout_id")
		return
	}
	audio, ok := readAudioFile(c)
	if !ok {
		return
	}

	result, err := v.voiceService.ProcessUpload(c.Request.Context(), userID, workoutID, audio)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Voice note processed successfully")
}

// Parse godoc
// @Summary Parse a voice note into structured sets
// @Description Transcribes the audio and extracts sets without touching any workout
// @Tags Voice
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio recording"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /voice/process [post]
func (v *VoiceController) Process(c *gin.Context) {
	if _, ok := authedUserID(c); !ok {
		return
	}
	audio, ok := readAudioFile(c)
	if !ok {
		return
	}

	result, err := v.voiceService.ParseWorkout(c.Request.Context(), audio)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Voice note parsed successfully")
}

// Reanalyze godoc
// @Summary Re-run analysis on a stored transcription
// @Tags Voice
// @Accept json
// @Produce json
// @Param request body request_models.ReanalyzeRequest true "Reanalyze payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /voice/reanalyze [post]
func (v *VoiceController) Reanalyze(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.ReanalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	workoutID, err := uuid.Parse(req.WorkoutID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout_id")
		return
	}

	result, err := v.voiceService.Reanalyze(c.Request.Context(), userID, workoutID, req.Transcription)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Transcription reanalyzed successfully")
}

// UpdateAnalysis godoc
// @Summary Save a hand-edited analysis
// @Description Persists the edited markdown verbatim and stamps the edit time
// @Tags Voice
// @Accept json
// @Produce json
// @Param request body request_models.UpdateAnalysisRequest true "Analysis payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /voice/analysis [put]
func (v *VoiceController) UpdateAnalysis(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	workoutID, err := uuid.Parse(req.WorkoutID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout_id")
		return
	}

	analysis, err := v.voiceService.UpdateAnalysis(c.Request.Context(), userID, workoutID, req.Analysis)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "Analysis updated successfully")
}
