package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlog/internal/models/request_models"
	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// Get godoc
// @Summary Get user settings
// @Description Returns stored settings, or the defaults before the first save
// @Tags Settings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /settings [get]
func (s *SettingsController) Get(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	settings, err := s.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings fetched successfully")
}

// Update godoc
// @Summary Update user settings
// @Description Upserts the full settings document
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request_models.UpdateSettingsRequest true "Settings payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /settings [put]
func (s *SettingsController) Update(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	settings, err := s.settingsService.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings updated successfully")
}
