package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Name          string  `gorm:"size:150;not null" json:"name"`
	PricePerNight float64 `gorm:"not null" json:"price_per_night"`
	Capacity      int     `gorm:"not null" json:"capacity"`
	Description   string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
