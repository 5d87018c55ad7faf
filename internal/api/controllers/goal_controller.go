package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlog/internal/models/request_models"
	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

type GoalController struct {
	goalService services.GoalServiceInterface
}

func NewGoalController(goalService services.GoalServiceInterface) *GoalController {
	return &GoalController{
		goalService: goalService,
	}
}

// CreateEvent godoc
// @Summary Create a shared event
// @Description Creates an event others can train toward; returns its share token
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /events [post]
func (g *GoalController) CreateEvent(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := g.goalService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created successfully")
}

// ListEvents godoc
// @Summary List discoverable events
// @Tags Goals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /events [get]
func (g *GoalController) ListEvents(c *gin.Context) {
	events, err := g.goalService.ListDiscoverableEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// EventByToken godoc
// @Summary Look up an event by share token
// @Tags Goals
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /events/token/{token} [get]
func (g *GoalController) EventByToken(c *gin.Context) {
	event, err := g.goalService.FindEventByShareToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

// CreateGoal godoc
// @Summary Create a training goal
// @Description Attach a goal to an existing event or create the event inline
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body request_models.CreateGoalRequest true "Goal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /goals [post]
func (g *GoalController) CreateGoal(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	goal, err := g.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goal, "Goal created successfully")
}

// ListGoals godoc
// @Summary List my goals
// @Tags Goals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /goals [get]
func (g *GoalController) ListGoals(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	goals, err := g.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goals, "Goals fetched successfully")
}

// GetGoal godoc
// @Summary Get one goal with progress
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /goals/{id} [get]
func (g *GoalController) GetGoal(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	goalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	goal, err := g.goalService.GetGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goal, "Goal fetched successfully")
}

// ShareGoal godoc
// @Summary Share a goal with another user
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body request_models.ShareGoalRequest true "Share payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /goals/{id}/share [post]
func (g *GoalController) ShareGoal(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	goalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.ShareGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := g.goalService.ShareGoal(c.Request.Context(), userID, goalID, req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Goal shared successfully")
}

// SharedWithMe godoc
// @Summary List goals shared with me
// @Tags Goals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /goals/shared [get]
func (g *GoalController) SharedWithMe(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	goals, err := g.goalService.ListSharedWithMe(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goals, "Shared goals fetched successfully")
}
