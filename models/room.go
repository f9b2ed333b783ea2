package models

import (
	"time"

	"gorm.io/gorm"
)

// Room statuses. The values are compared and displayed verbatim by the
// frontend, so they must not be renamed.
const (
	RoomStatusAvailable   = "disponible"
	RoomStatusOccupied    = "occupee"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "nettoyage"
)

type Room struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	HotelID    uint `gorm:"index;not null;uniqueIndex:idx_rooms_hotel_number" json:"hotel_id"`
	RoomTypeID uint `gorm:"index;not null" json:"room_type_id"`

	// Number is unique within a hotel, not globally.
	Number string `gorm:"size:50;not null;uniqueIndex:idx_rooms_hotel_number" json:"number"`
	// Floor is nullable; nil or 0 means ground floor.
	Floor  *int   `json:"floor,omitempty"`
	Status string `gorm:"size:50;default:disponible" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}
