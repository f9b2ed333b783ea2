package controllers

import (
	"net/http"

	"hotelms-backend/middleware"
	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAll(middleware.HotelID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id.
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Service.GetByID(middleware.HotelID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room.ID = 0
	room.HotelID = middleware.HotelID(c)

	if err := rc.Service.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PATCH /api/rooms/:id (partial update, never status).
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	if err := rc.Service.Update(middleware.HotelID(c), id, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

type roomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// SetRoomStatus handles PATCH /api/rooms/:id/status (manual staff
// transition).
func (rc *RoomController) SetRoomStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	room, err := rc.Service.SetStatus(middleware.HotelID(c), id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := rc.Service.Delete(middleware.HotelID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
