package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to the HTTP boundary. Business
// rule conflicts are 409s; only unexpected failures become 500s.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "room is not available for the requested dates")
	case errors.Is(err, services.ErrRoomBusy):
		utils.JSONError(c, http.StatusConflict, "room has a checked-in reservation")
	case errors.Is(err, services.ErrInsufficientStock):
		utils.JSONError(c, http.StatusConflict, "insufficient stock for this movement")
	case errors.Is(err, services.ErrInvalidState), errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrSubscriptionInactive):
		utils.JSONError(c, http.StatusForbidden, "hotel subscription is inactive")
	default:
		log.Printf("❌ internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
