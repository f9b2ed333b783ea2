package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a booking customer. Clients are shared across hotels: the same
// person can book stays in several hotels of the platform.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:255;not null" json:"full_name"`
	Email    string `gorm:"size:150;index" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
