package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a platform-level super-admin account (not tied to a hotel).
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"full_name"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Password string `gorm:"size:255" json:"-"` // store hashed password, never return in JSON

	RefreshTokenHash    *string    `gorm:"size:128;index" json:"-"`
	RefreshTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
