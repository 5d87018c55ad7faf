package controllers

import (
	"github.com/gin-gonic/gin"

	"fitlog/internal/services"
	"fitlog/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// Summary godoc
// @Summary Dashboard stats
// @Description Current streak and rolling 7-day totals for the authenticated user
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /stats/summary [get]
func (s *StatsController) Summary(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	summary, err := s.statsService.Summary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Stats fetched successfully")
}
