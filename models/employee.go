package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles within a hotel.
const (
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
	RoleHousekeeping = "housekeeping"
)

type Employee struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	FullName string `gorm:"size:255;not null" json:"full_name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"`
	Phone    string `gorm:"size:50" json:"phone"`
	Role     string `gorm:"size:50;default:receptionist" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`

	RefreshTokenHash    *string    `gorm:"size:128;index" json:"-"`
	RefreshTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
