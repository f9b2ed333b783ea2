package middleware

import (
	"net/http"
	"strings"

	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT access token from the Authorization header
// and injects the actor into the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("hotelID", claims.HotelID)

		c.Next()
	}
}

// RequireSuperAdmin restricts a route group to platform admins.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if role != services.RoleSuperAdmin {
			utils.JSONError(c, http.StatusForbidden, "Super-admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireHotelStaff rejects actors without a hotel scope (super-admins use
// the /api/admin surface instead).
func RequireHotelStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, exists := c.Get("hotelID")
		if !exists || hotelID.(uint) == 0 {
			utils.JSONError(c, http.StatusForbidden, "Hotel staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// HotelID returns the authenticated actor's hotel scope.
func HotelID(c *gin.Context) uint {
	if v, exists := c.Get("hotelID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ActorID returns the authenticated actor's user ID.
func ActorID(c *gin.Context) uint {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
