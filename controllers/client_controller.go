package controllers

import (
	"net/http"
	"strings"

	"hotelms-backend/config"
	"hotelms-backend/models"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetClients(c *gin.Context) {
	var clients []models.Client
	query := config.DB.Order("full_name ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	query.Find(&clients)
	utils.JSONSuccess(c, http.StatusOK, clients)
}

func CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	client.ID = 0
	client.FullName = strings.TrimSpace(client.FullName)
	if client.FullName == "" {
		utils.JSONError(c, http.StatusBadRequest, "full name is required")
		return
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create client")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client)
}

func GetClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var client models.Client
	if err := config.DB.First(&client, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "client not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}
