package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelms-backend/controllers"
	"hotelms-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	sc *controllers.StockController,
	pc *controllers.PlanningController,
	ec *controllers.EmployeeController,
	hac *controllers.HotelAdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/refresh", ac.Refresh)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())

	// Super-admin console
	admin := authed.Group("/admin")
	admin.Use(middleware.RequireSuperAdmin())
	{
		hotels := admin.Group("/hotels")
		{
			hotels.GET("", hac.GetHotels)
			hotels.POST("", hac.CreateHotel)
			hotels.GET("/:id", hac.GetHotel)
			hotels.PATCH("/:id", hac.UpdateHotel)
			hotels.PUT("/:id/subscription", hac.SetSubscription)
		}
	}

	// Hotel staff surface, scoped to the actor's hotel
	staff := authed.Group("")
	staff.Use(middleware.RequireHotelStaff())
	{
		rooms := staff.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.SetRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		roomTypes := staff.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.POST("", controllers.CreateRoomType)
			roomTypes.DELETE("/:id", controllers.DeleteRoomType)
		}

		reservations := staff.Group("/reservations")
		{
			// /availability must come before /:id
			reservations.GET("/availability", resc.CheckAvailability)
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/:id", resc.GetReservation)
			reservations.POST("/:id/confirm", resc.ConfirmReservation)
			reservations.POST("/:id/checkin", resc.CheckInReservation)
			reservations.POST("/:id/checkout", resc.CheckOutReservation)
			reservations.POST("/:id/cancel", resc.CancelReservation)
		}

		clients := staff.Group("/clients")
		{
			clients.GET("", controllers.GetClients)
			clients.POST("", controllers.CreateClient)
			clients.GET("/:id", controllers.GetClient)
		}

		stock := staff.Group("/stock")
		{
			stock.GET("/categories", controllers.GetStockCategories)
			stock.POST("/categories", controllers.CreateStockCategory)
			stock.GET("/articles", sc.GetArticles)
			stock.POST("/articles", sc.CreateArticle)
			stock.POST("/articles/:id/movements", sc.ApplyMovement)
			stock.GET("/articles/:id/movements", sc.GetMovements)
			stock.GET("/alerts", sc.GetAlerts)
		}

		planning := staff.Group("/planning")
		{
			planning.GET("", pc.GetPlanning)
			planning.PUT("", pc.SavePlanning)
		}

		employees := staff.Group("/employees")
		{
			employees.GET("", ec.GetEmployees)
			employees.POST("", ec.CreateEmployee)
			employees.PATCH("/:id", ec.UpdateEmployee)
			employees.DELETE("/:id", ec.DeactivateEmployee)
		}
	}

	return r
}
