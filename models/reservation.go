package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses, displayed verbatim by the frontend. There is no
// distinct "checked out" label: a checked-out reservation shows as terminee.
const (
	ReservationPending   = "en_attente"
	ReservationConfirmed = "confirmee"
	ReservationCheckedIn = "check_in"
	ReservationFinished  = "terminee"
	ReservationCanceled  = "annulee"
)

// ActiveReservationStatuses are the statuses that block a room for a date
// range in the availability check.
var ActiveReservationStatuses = []string{
	ReservationPending,
	ReservationConfirmed,
	ReservationCheckedIn,
}

type Reservation struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	HotelID  uint `gorm:"index;not null" json:"hotel_id"`
	RoomID   uint `gorm:"index;not null" json:"room_id"`
	ClientID uint `gorm:"index;not null" json:"client_id"`

	// Arrival and Departure are date-only; the stay covers the half-open
	// interval [Arrival, Departure).
	Arrival   time.Time `gorm:"not null;index" json:"arrival"`
	Departure time.Time `gorm:"not null;index" json:"departure"`

	Adults   int `gorm:"default:1" json:"adults"`
	Children int `gorm:"default:0" json:"children"`

	Status string `gorm:"size:50;default:en_attente;index" json:"status"`
	// Number is assigned on confirm; nil while pending.
	Number     *string `gorm:"size:64;uniqueIndex" json:"number,omitempty"`
	TotalPrice float64 `json:"total_price"`

	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`

	SpecialRequests string `gorm:"type:text" json:"special_requests"`
	CancelReason    string `gorm:"type:text" json:"cancel_reason,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// Nights returns the length of the stay in whole days.
func (r *Reservation) Nights() int {
	return int(r.Departure.Sub(r.Arrival).Hours() / 24)
}
