package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

// paramID parses a numeric path parameter; on failure it answers 400 and
// returns false.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseDate parses an ISO date string (2006-01-02).
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
