package controllers

import (
	"net/http"

	"hotelms-backend/middleware"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type PlanningController struct {
	Service *services.PlanningService
}

func NewPlanningController(service *services.PlanningService) *PlanningController {
	return &PlanningController{Service: service}
}

// GetPlanning handles GET /api/planning?week=YYYY-MM-DD. Any date within the
// week is accepted; it is snapped to its Monday.
func (pc *PlanningController) GetPlanning(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		utils.JSONError(c, http.StatusBadRequest, "week query parameter is required (YYYY-MM-DD)")
		return
	}
	day, err := parseDate(week)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid week date")
		return
	}
	weekStart := services.WeekStart(day)

	grid, err := pc.Service.GetPlanning(middleware.HotelID(c), weekStart)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"week_start": weekStart.Format("2006-01-02"),
		"planning":   grid,
	})
}

type savePlanningPayload struct {
	Week    string                `json:"week" binding:"required"`
	Entries []services.SlotsInput `json:"entries" binding:"required"`
}

// SavePlanning handles PUT /api/planning.
func (pc *PlanningController) SavePlanning(c *gin.Context) {
	var payload savePlanningPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "week and entries are required")
		return
	}
	day, err := parseDate(payload.Week)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid week date")
		return
	}
	weekStart := services.WeekStart(day)

	if err := pc.Service.SavePlanning(middleware.HotelID(c), weekStart, payload.Entries); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"week_start": weekStart.Format("2006-01-02"),
		"message":    "planning saved",
	})
}
