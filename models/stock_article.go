package models

import (
	"time"

	"gorm.io/gorm"
)

type StockArticle struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	HotelID    uint `gorm:"index;not null" json:"hotel_id"`
	CategoryID uint `gorm:"index;not null" json:"category_id"`

	Name     string `gorm:"size:150;not null" json:"name"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`
	// MinThreshold is the low-stock floor; quantity <= threshold raises an alert.
	MinThreshold int      `gorm:"not null;default:0" json:"min_threshold"`
	Unit         string   `gorm:"size:50" json:"unit"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
	Supplier     string   `gorm:"size:255" json:"supplier"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category StockCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
