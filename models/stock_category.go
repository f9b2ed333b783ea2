package models

import (
	"time"

	"gorm.io/gorm"
)

type StockCategory struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
