package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotelms-backend/config"
	"hotelms-backend/controllers"
	"hotelms-backend/routes"
	"hotelms-backend/services"
	"hotelms-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}
	accessExpiry, err := time.ParseDuration(utils.EnvOrDefault("ACCESS_TOKEN_EXPIRY", "15m"))
	if err != nil {
		log.Fatalf("❌ Invalid ACCESS_TOKEN_EXPIRY: %v", err)
	}
	refreshExpiry, err := time.ParseDuration(utils.EnvOrDefault("REFRESH_TOKEN_EXPIRY", "168h"))
	if err != nil {
		log.Fatalf("❌ Invalid REFRESH_TOKEN_EXPIRY: %v", err)
	}
	utils.InitJWT(jwtSecret, accessExpiry, refreshExpiry)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	authService := services.NewAuthService(db)
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db, services.LogNotifier{})
	stockService := services.NewStockService(db)
	planningService := services.NewPlanningService(db)
	employeeService := services.NewEmployeeService(db)
	hotelService := services.NewHotelService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	stockController := controllers.NewStockController(stockService)
	planningController := controllers.NewPlanningController(planningService)
	employeeController := controllers.NewEmployeeController(employeeService)
	hotelAdminController := controllers.NewHotelAdminController(hotelService)

	router := routes.SetupRouter(
		authController,
		roomController,
		reservationController,
		stockController,
		planningController,
		employeeController,
		hotelAdminController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
