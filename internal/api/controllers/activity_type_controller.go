package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlog/internal/models/request_models"
	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

type ActivityTypeController struct {
	activityTypeService services.ActivityTypeServiceInterface
}

func NewActivityTypeController(activityTypeService services.ActivityTypeServiceInterface) *ActivityTypeController {
	return &ActivityTypeController{
		activityTypeService: activityTypeService,
	}
}

// List godoc
// @Summary List activity types
// @Description Fixed catalog plus the user's custom types
// @Tags ActivityTypes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /activity-types [get]
func (a *ActivityTypeController) List(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	types, err := a.activityTypeService.ListActivityTypes(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, types, "Activity types fetched successfully")
}

// Create godoc
// @Summary Create a custom activity type
// @Tags ActivityTypes
// @Accept json
// @Produce json
// @Param request body request_models.CreateActivityTypeRequest true "Activity type payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /activity-types [post]
func (a *ActivityTypeController) Create(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := a.activityTypeService.CreateActivityType(c.Request.Context(), userID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created, "Activity type created successfully")
}

// Delete godoc
// @Summary Delete a custom activity type
// @Description Removes the catalog entry; existing workouts keep the label
// @Tags ActivityTypes
// @Produce json
// @Param id path string true "Activity type ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /activity-types/{id} [delete]
func (a *ActivityTypeController) Delete(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	typeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := a.activityTypeService.DeleteActivityType(c.Request.Context(), userID, typeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity type deleted successfully")
}
