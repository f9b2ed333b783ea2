package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelms-backend/models"

	"gorm.io/gorm"
)

// RoomService owns room CRUD and the room status state machine.
//
// Statuses: disponible, occupee, maintenance, nettoyage. There is no
// "reserved" room status: a room with a pending or confirmed reservation
// keeps its current status until check-in.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func validRoomStatus(status string) bool {
	switch status {
	case models.RoomStatusAvailable, models.RoomStatusOccupied,
		models.RoomStatusMaintenance, models.RoomStatusCleaning:
		return true
	}
	return false
}

// Create persists a new room after validating its type and number.
func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return validationf("room number is required")
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !validRoomStatus(room.Status) {
		return validationf("unknown room status %q", room.Status)
	}

	var rt models.RoomType
	if err := s.DB.Where("hotel_id = ?", room.HotelID).First(&rt, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationf("room type %d not found", room.RoomTypeID)
		}
		return fmt.Errorf("failed to check room type: %w", err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return validationf("room number %q already exists", room.Number)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetAll lists a hotel's rooms with their types.
func (s *RoomService) GetAll(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Preload("RoomType").
		Where("hotel_id = ?", hotelID).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// GetByID loads one room of the hotel.
func (s *RoomService) GetByID(hotelID, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.
		Preload("RoomType").
		Where("hotel_id = ?", hotelID).
		First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	return &room, nil
}

// SetStatus is the manual staff transition. Any state may move to disponible,
// maintenance or nettoyage; moving into occupee is only possible through
// check-in. A room holding a checked-in reservation cannot be moved at all.
func (s *RoomService) SetStatus(hotelID, roomID uint, newStatus string) (*models.Room, error) {
	if !validRoomStatus(newStatus) {
		return nil, validationf("unknown room status %q", newStatus)
	}
	if newStatus == models.RoomStatusOccupied {
		return nil, fmt.Errorf("%w: occupee is only reachable via check-in", ErrInvalidTransition)
	}

	var room models.Room
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("hotel_id = ?", hotelID).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		var busy int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND status = ?", room.ID, models.ReservationCheckedIn).
			Count(&busy).Error; err != nil {
			return fmt.Errorf("failed to check reservations: %w", err)
		}
		if busy > 0 {
			return ErrRoomBusy
		}

		if err := tx.Model(&room).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}
		room.Status = newStatus
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &room, nil
}

// checkInRoom flips a room to occupee for a check-in. Called inside the
// reservation check-in transaction; tx must hold the current transaction.
func checkInRoom(tx *gorm.DB, roomID uint) error {
	var room models.Room
	if err := lockForUpdate(tx).
		First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	if room.Status == models.RoomStatusOccupied {
		return fmt.Errorf("%w: room %s is already occupied", ErrInvalidTransition, room.Number)
	}
	if err := tx.Model(&room).Update("status", models.RoomStatusOccupied).Error; err != nil {
		return fmt.Errorf("failed to occupy room: %w", err)
	}
	return nil
}

// checkOutRoom flips a room to nettoyage for a check-out. Housekeeping is
// mandatory: a room never goes straight back to disponible.
func checkOutRoom(tx *gorm.DB, roomID uint) error {
	if err := tx.Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", models.RoomStatusCleaning).Error; err != nil {
		return fmt.Errorf("failed to send room to cleaning: %w", err)
	}
	return nil
}

// Update applies partial updates to a room; status changes must go through
// SetStatus and are stripped here.
func (s *RoomService) Update(hotelID, roomID uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "hotel_id")
	delete(updates, "status")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	result := s.DB.Model(&models.Room{}).
		Where("id = ? AND hotel_id = ?", roomID, hotelID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", roomID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a room; a room referenced by any reservation is kept.
func (s *RoomService) Delete(hotelID, roomID uint) error {
	var referenced int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Count(&referenced).Error; err != nil {
		return fmt.Errorf("failed to check reservations: %w", err)
	}
	if referenced > 0 {
		return fmt.Errorf("%w: room has reservations", ErrInvalidState)
	}

	result := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.Room{}, roomID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", roomID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
