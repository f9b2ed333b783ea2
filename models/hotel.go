package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription plans handled by the super-admin console.
const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`

	SubscriptionPlan      string     `gorm:"size:50;default:basic" json:"subscription_plan"`
	SubscriptionActive    bool       `gorm:"default:true" json:"subscription_active"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
