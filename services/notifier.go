package services

import (
	"log"

	"hotelms-backend/models"
)

// Notifier receives reservation lifecycle side effects. Actual delivery
// (email, push) lives outside this backend; the default implementation just
// logs.
type Notifier interface {
	ReservationConfirmed(res *models.Reservation)
	ReservationCanceled(res *models.Reservation, reason string)
}

type LogNotifier struct{}

func (LogNotifier) ReservationConfirmed(res *models.Reservation) {
	number := ""
	if res.Number != nil {
		number = *res.Number
	}
	log.Printf("📩 reservation %s confirmed (client %d, room %d)", number, res.ClientID, res.RoomID)
}

func (LogNotifier) ReservationCanceled(res *models.Reservation, reason string) {
	log.Printf("📩 reservation %d canceled (reason: %s)", res.ID, reason)
}
