package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitlog/internal/models/request_models"
	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

// Create godoc
// @Summary Log a workout
// @Description Create a workout entry for the authenticated user
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body request_models.CreateWorkoutRequest true "Workout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /workouts [post]
func (w *WorkoutController) Create(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.CreateWorkout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workout, "Workout created successfully")
}

// Get godoc
// @Summary Get a workout
// @Description Fetch one workout by id
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /workouts/{id} [get]
func (w *WorkoutController) Get(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	workout, err := w.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workout, "Workout fetched successfully")
}

// List godoc
// @Summary List workout history
// @Description Recent workouts, newest first
// @Tags Workouts
// @Produce json
// @Param limit query int false "Max entries to return"
// @Success 200 {object} utils.APIResponse
// @Router /workouts [get]
func (w *WorkoutController) List(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	workouts, err := w.workoutService.ListHistory(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workouts, "Workouts fetched successfully")
}

// Week godoc
// @Summary List a calendar week of workouts
// @Description Workouts in the Monday-to-Sunday week containing the given date
// @Tags Workouts
// @Produce json
// @Param date query string true "Any date in the target week (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /workouts/week [get]
func (w *WorkoutController) Week(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	workouts, err := w.workoutService.ListWeek(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workouts, "Workouts fetched successfully")
}

// Update godoc
// @Summary Update a workout
// @Description Replace all editable fields of a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param request body request_models.UpdateWorkoutRequest true "Workout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /workouts/{id} [put]
func (w *WorkoutController) Update(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workout, "Workout updated successfully")
}

// Delete godoc
// @Summary Delete a workout
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /workouts/{id} [delete]
func (w *WorkoutController) Delete(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := w.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Workout deleted successfully")
}

// Similar godoc
// @Summary Find similar past workouts
// @Description Embedding similarity over workout transcripts
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} utils.APIResponse
// @Router /workouts/{id}/similar [get]
func (w *WorkoutController) Similar(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	similar, err := w.workoutService.SimilarWorkouts(c.Request.Context(), userID, workoutID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "Similar workouts fetched successfully")
}
