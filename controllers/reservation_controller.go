package controllers

import (
	"net/http"

	"hotelms-backend/middleware"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type availabilityPayload struct {
	RoomID     *uint  `form:"room_id" json:"room_id"`
	RoomTypeID *uint  `form:"room_type_id" json:"room_type_id"`
	Arrival    string `form:"arrival" json:"arrival" binding:"required"`
	Departure  string `form:"departure" json:"departure" binding:"required"`
	Adults     int    `form:"adults" json:"adults"`
	Children   int    `form:"children" json:"children"`
}

// CheckAvailability handles GET /api/reservations/availability.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	var payload availabilityPayload
	if err := c.ShouldBindQuery(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "arrival and departure are required (YYYY-MM-DD)")
		return
	}
	arrival, err := parseDate(payload.Arrival)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid arrival date")
		return
	}
	departure, err := parseDate(payload.Departure)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid departure date")
		return
	}
	if payload.Adults == 0 {
		payload.Adults = 1
	}

	rooms, err := rc.Service.CheckAvailability(middleware.HotelID(c), services.AvailabilityQuery{
		RoomID:     payload.RoomID,
		RoomTypeID: payload.RoomTypeID,
		Arrival:    arrival,
		Departure:  departure,
		Adults:     payload.Adults,
		Children:   payload.Children,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

type createReservationPayload struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	ClientID        uint   `json:"client_id" binding:"required"`
	Arrival         string `json:"arrival" binding:"required"`
	Departure       string `json:"departure" binding:"required"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

// CreateReservation handles POST /api/reservations.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	arrival, err := parseDate(payload.Arrival)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid arrival date")
		return
	}
	departure, err := parseDate(payload.Departure)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid departure date")
		return
	}
	if payload.Adults == 0 {
		payload.Adults = 1
	}

	reservation, err := rc.Service.Create(middleware.HotelID(c), services.CreateInput{
		RoomID:          payload.RoomID,
		ClientID:        payload.ClientID,
		Arrival:         arrival,
		Departure:       departure,
		Adults:          payload.Adults,
		Children:        payload.Children,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// GetReservations handles GET /api/reservations.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Service.GetAll(middleware.HotelID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservation handles GET /api/reservations/:id.
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservation, err := rc.Service.GetByID(middleware.HotelID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// ConfirmReservation handles POST /api/reservations/:id/confirm.
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservation, err := rc.Service.Confirm(middleware.HotelID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// CheckInReservation handles POST /api/reservations/:id/checkin.
func (rc *ReservationController) CheckInReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservation, err := rc.Service.CheckIn(middleware.HotelID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// CheckOutReservation handles POST /api/reservations/:id/checkout.
func (rc *ReservationController) CheckOutReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	reservation, err := rc.Service.CheckOut(middleware.HotelID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

type cancelPayload struct {
	Reason string `json:"reason"`
}

// CancelReservation handles POST /api/reservations/:id/cancel.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload cancelPayload
	_ = c.ShouldBindJSON(&payload) // reason is optional

	reservation, err := rc.Service.Cancel(middleware.HotelID(c), id, payload.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}
