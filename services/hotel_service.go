package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelms-backend/models"

	"gorm.io/gorm"
)

// HotelService backs the super-admin console: tenant hotels and their
// subscriptions.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	hotel.Name = strings.TrimSpace(hotel.Name)
	if hotel.Name == "" {
		return validationf("hotel name is required")
	}
	if hotel.SubscriptionPlan == "" {
		hotel.SubscriptionPlan = models.PlanBasic
	}
	switch hotel.SubscriptionPlan {
	case models.PlanBasic, models.PlanPremium:
	default:
		return validationf("unknown subscription plan %q", hotel.SubscriptionPlan)
	}

	if err := s.DB.Create(hotel).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) GetByID(hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	return &hotel, nil
}

func (s *HotelService) Update(hotelID uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	result := s.DB.Model(&models.Hotel{}).Where("id = ?", hotelID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update hotel %d: %w", hotelID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSubscription switches a hotel's plan and active flag. Deactivating a
// subscription locks its staff out at the next login.
func (s *HotelService) SetSubscription(hotelID uint, plan string, active bool, expiresAt *time.Time) (*models.Hotel, error) {
	switch plan {
	case models.PlanBasic, models.PlanPremium:
	default:
		return nil, validationf("unknown subscription plan %q", plan)
	}

	hotel, err := s.GetByID(hotelID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(hotel).Updates(map[string]interface{}{
		"subscription_plan":       plan,
		"subscription_active":     active,
		"subscription_expires_at": expiresAt,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	hotel.SubscriptionPlan = plan
	hotel.SubscriptionActive = active
	hotel.SubscriptionExpiresAt = expiresAt
	return hotel, nil
}
