package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RestSlot is the reserved sentinel for a rest day in the planning grid.
const RestSlot = "repos"

// PlanningEntry holds one employee's shifts for one week. Slots maps the
// weekday number ("1" = Monday .. "7" = Sunday) to a free-text value, either
// a time range like "08:00-16:00" or the literal "repos".
type PlanningEntry struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	HotelID    uint `gorm:"index;not null" json:"hotel_id"`
	EmployeeID uint `gorm:"not null;uniqueIndex:idx_planning_employee_week" json:"employee_id"`

	// WeekStart is always a Monday.
	WeekStart time.Time      `gorm:"not null;uniqueIndex:idx_planning_employee_week" json:"week_start"`
	Slots     datatypes.JSON `gorm:"not null" json:"slots"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}
