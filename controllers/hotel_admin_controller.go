package controllers

import (
	"net/http"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

// HotelAdminController is the super-admin console: tenant hotels and their
// subscriptions.
type HotelAdminController struct {
	Service *services.HotelService
}

func NewHotelAdminController(service *services.HotelService) *HotelAdminController {
	return &HotelAdminController{Service: service}
}

// GetHotels handles GET /api/admin/hotels.
func (hc *HotelAdminController) GetHotels(c *gin.Context) {
	hotels, err := hc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetHotel handles GET /api/admin/hotels/:id.
func (hc *HotelAdminController) GetHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	hotel, err := hc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// CreateHotel handles POST /api/admin/hotels.
func (hc *HotelAdminController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	hotel.ID = 0

	if err := hc.Service.Create(&hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// UpdateHotel handles PATCH /api/admin/hotels/:id.
func (hc *HotelAdminController) UpdateHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	if err := hc.Service.Update(id, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "hotel updated"})
}

type subscriptionPayload struct {
	Plan      string `json:"plan" binding:"required"`
	Active    bool   `json:"active"`
	ExpiresAt string `json:"expires_at"`
}

// SetSubscription handles PUT /api/admin/hotels/:id/subscription.
func (hc *HotelAdminController) SetSubscription(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload subscriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "plan is required")
		return
	}

	var expiresAt *time.Time
	if payload.ExpiresAt != "" {
		t, err := parseDate(payload.ExpiresAt)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid expires_at date")
			return
		}
		expiresAt = &t
	}

	hotel, err := hc.Service.SetSubscription(id, payload.Plan, payload.Active, expiresAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
