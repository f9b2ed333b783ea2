package controllers

import (
	"net/http"

	"hotelms-backend/config"
	"hotelms-backend/middleware"
	"hotelms-backend/models"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	config.DB.Where("hotel_id = ?", middleware.HotelID(c)).Order("name ASC").Find(&types)
	utils.JSONSuccess(c, http.StatusOK, types)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	rt.ID = 0
	rt.HotelID = middleware.HotelID(c)

	if rt.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if rt.PricePerNight <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "price per night must be positive")
		return
	}
	if rt.Capacity <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "capacity must be positive")
		return
	}

	if err := config.DB.Create(&rt).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func DeleteRoomType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	// Refuse while rooms still reference the type.
	var inUse int64
	config.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&inUse)
	if inUse > 0 {
		utils.JSONError(c, http.StatusConflict, "room type is still assigned to rooms")
		return
	}

	result := config.DB.Where("hotel_id = ?", middleware.HotelID(c)).Delete(&models.RoomType{}, id)
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "room type not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
