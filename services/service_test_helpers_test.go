package services

import (
	"testing"
	"time"

	"hotelms-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Hotel{},
		&models.Employee{},
		&models.Client{},
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
		&models.StockCategory{},
		&models.StockArticle{},
		&models.StockMovement{},
		&models.PlanningEntry{},
	))
	return db
}

func seedHotel(t *testing.T, db *gorm.DB) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{
		Name:               "Hotel Test",
		SubscriptionPlan:   models.PlanBasic,
		SubscriptionActive: true,
	}
	require.NoError(t, db.Create(hotel).Error)
	return hotel
}

func seedRoomType(t *testing.T, db *gorm.DB, hotelID uint, name string, price float64, capacity int) *models.RoomType {
	t.Helper()
	rt := &models.RoomType{
		HotelID:       hotelID,
		Name:          name,
		PricePerNight: price,
		Capacity:      capacity,
	}
	require.NoError(t, db.Create(rt).Error)
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID, typeID uint, number string) *models.Room {
	t.Helper()
	room := &models.Room{
		HotelID:    hotelID,
		RoomTypeID: typeID,
		Number:     number,
		Status:     models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()
	client := &models.Client{FullName: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedEmployee(t *testing.T, db *gorm.DB, hotelID uint, name, role string) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		HotelID:  hotelID,
		FullName: name,
		Email:    name + "@hotel.test",
		Role:     role,
		Active:   true,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

// futureDate returns today+days at midnight UTC, for reservations that must
// not be in the past.
func futureDate(days int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}
