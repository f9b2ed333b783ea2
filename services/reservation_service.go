package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/utils"

	"gorm.io/gorm"
)

// ReservationService drives the reservation lifecycle
// (en_attente → confirmee → check_in → terminee, annulee from the first two)
// and the availability check behind it.
type ReservationService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func NewReservationService(db *gorm.DB, notifier Notifier) *ReservationService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ReservationService{DB: db, Notifier: notifier}
}

// intervalsOverlap reports whether the half-open date ranges [a1, d1) and
// [a2, d2) intersect. Departure day and arrival day may coincide: back-to-back
// stays on the same room do not conflict.
func intervalsOverlap(a1, d1, a2, d2 time.Time) bool {
	return a1.Before(d2) && a2.Before(d1)
}

// dateOnly truncates a timestamp to midnight UTC so that date comparisons are
// exact regardless of how the input was parsed.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AvailabilityQuery narrows the availability search. Exactly one of RoomID or
// RoomTypeID may be set; with neither, every room of the hotel is considered.
type AvailabilityQuery struct {
	RoomID     *uint
	RoomTypeID *uint
	Arrival    time.Time
	Departure  time.Time
	Adults     int
	Children   int
}

// CheckAvailability returns the rooms free over [arrival, departure) whose
// type capacity fits the party. A room is excluded when any reservation in
// {en_attente, confirmee, check_in} overlaps the requested range.
func (s *ReservationService) CheckAvailability(hotelID uint, q AvailabilityQuery) ([]models.Room, error) {
	arrival := dateOnly(q.Arrival)
	departure := dateOnly(q.Departure)
	if !departure.After(arrival) {
		return nil, validationf("departure must be after arrival")
	}
	if q.Adults < 1 {
		return nil, validationf("at least one adult is required")
	}
	if q.Children < 0 {
		return nil, validationf("children count cannot be negative")
	}

	var busyRoomIDs []uint
	if err := s.DB.Model(&models.Reservation{}).
		Where("hotel_id = ? AND status IN ?", hotelID, models.ActiveReservationStatuses).
		Where("arrival < ? AND ? < departure", departure, arrival).
		Distinct().
		Pluck("room_id", &busyRoomIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to query conflicting reservations: %w", err)
	}

	query := s.DB.
		Preload("RoomType").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.hotel_id = ?", hotelID).
		Where("room_types.capacity >= ?", q.Adults+q.Children)
	if q.RoomID != nil {
		query = query.Where("rooms.id = ?", *q.RoomID)
	}
	if q.RoomTypeID != nil {
		query = query.Where("rooms.room_type_id = ?", *q.RoomTypeID)
	}
	if len(busyRoomIDs) > 0 {
		query = query.Where("rooms.id NOT IN ?", busyRoomIDs)
	}

	var rooms []models.Room
	if err := query.Order("rooms.number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	return rooms, nil
}

// CreateInput carries everything needed to open a reservation.
type CreateInput struct {
	RoomID          uint
	ClientID        uint
	Arrival         time.Time
	Departure       time.Time
	Adults          int
	Children        int
	SpecialRequests string
}

// Create opens a reservation in en_attente. The overlap check and the insert
// run in one transaction with the room row locked, so two concurrent creates
// for overlapping ranges on the same room cannot both succeed.
func (s *ReservationService) Create(hotelID uint, in CreateInput) (*models.Reservation, error) {
	arrival := dateOnly(in.Arrival)
	departure := dateOnly(in.Departure)
	if !departure.After(arrival) {
		return nil, validationf("departure must be after arrival")
	}
	if arrival.Before(dateOnly(time.Now())) {
		return nil, validationf("arrival cannot be in the past")
	}
	if in.Adults < 1 {
		return nil, validationf("at least one adult is required")
	}
	if in.Children < 0 {
		return nil, validationf("children count cannot be negative")
	}

	var client models.Client
	if err := s.DB.First(&client, in.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationf("client %d not found", in.ClientID)
		}
		return nil, fmt.Errorf("failed to check client: %w", err)
	}

	var reservation models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the room row: concurrent creates for the same room serialize
		// here, which closes the check-then-insert race.
		var room models.Room
		if err := lockForUpdate(tx).
			Preload("RoomType").
			Where("hotel_id = ?", hotelID).
			First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", in.RoomID, err)
		}
		if room.RoomType.Capacity < in.Adults+in.Children {
			return validationf("room %s only sleeps %d guests", room.Number, room.RoomType.Capacity)
		}

		var conflicts int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND status IN ?", room.ID, models.ActiveReservationStatuses).
			Where("arrival < ? AND ? < departure", departure, arrival).
			Count(&conflicts).Error; err != nil {
			return fmt.Errorf("failed to check overlapping reservations: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		nights := int(departure.Sub(arrival).Hours() / 24)
		reservation = models.Reservation{
			HotelID:         hotelID,
			RoomID:          room.ID,
			ClientID:        client.ID,
			Arrival:         arrival,
			Departure:       departure,
			Adults:          in.Adults,
			Children:        in.Children,
			Status:          models.ReservationPending,
			TotalPrice:      float64(nights) * room.RoomType.PricePerNight,
			SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room.RoomType").Preload("Client").First(&reservation, reservation.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload reservation: %w", err)
	}
	return &reservation, nil
}

// Confirm moves en_attente → confirmee and assigns the reservation number.
// Confirming twice fails with ErrInvalidState instead of re-applying side
// effects.
func (s *ReservationService) Confirm(hotelID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, hotelID, reservationID, &reservation); err != nil {
			return err
		}
		if reservation.Status != models.ReservationPending {
			return fmt.Errorf("%w: cannot confirm a %s reservation", ErrInvalidState, reservation.Status)
		}

		// Retry on unique collisions, same scheme as code generation for
		// check-in links.
		var number string
		for attempt := 0; attempt < 5; attempt++ {
			n, err := utils.GenerateReservationNumber()
			if err != nil {
				return fmt.Errorf("failed to generate reservation number: %w", err)
			}
			var taken int64
			if err := tx.Model(&models.Reservation{}).Where("number = ?", n).Count(&taken).Error; err != nil {
				return fmt.Errorf("failed to check reservation number: %w", err)
			}
			if taken == 0 {
				number = n
				break
			}
			log.Printf("reservation number collision (attempt %d) - retrying", attempt+1)
		}
		if number == "" {
			return fmt.Errorf("failed to generate a unique reservation number")
		}

		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status": models.ReservationConfirmed,
			"number": number,
		}).Error; err != nil {
			return fmt.Errorf("failed to confirm reservation: %w", err)
		}
		reservation.Status = models.ReservationConfirmed
		reservation.Number = &number
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notifier.ReservationConfirmed(&reservation)
	return &reservation, nil
}

// CheckIn moves confirmee → check_in and occupies the room.
func (s *ReservationService) CheckIn(hotelID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, hotelID, reservationID, &reservation); err != nil {
			return err
		}
		if reservation.Status != models.ReservationConfirmed {
			return fmt.Errorf("%w: cannot check in a %s reservation", ErrInvalidState, reservation.Status)
		}

		if err := checkInRoom(tx, reservation.RoomID); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":        models.ReservationCheckedIn,
			"checked_in_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to check in reservation: %w", err)
		}
		reservation.Status = models.ReservationCheckedIn
		reservation.CheckedInAt = &now
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &reservation, nil
}

// CheckOut moves check_in → terminee and sends the room to nettoyage.
func (s *ReservationService) CheckOut(hotelID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, hotelID, reservationID, &reservation); err != nil {
			return err
		}
		if reservation.Status != models.ReservationCheckedIn {
			return fmt.Errorf("%w: cannot check out a %s reservation", ErrInvalidState, reservation.Status)
		}

		if err := checkOutRoom(tx, reservation.RoomID); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":         models.ReservationFinished,
			"checked_out_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to check out reservation: %w", err)
		}
		reservation.Status = models.ReservationFinished
		reservation.CheckedOutAt = &now
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &reservation, nil
}

// Cancel moves en_attente or confirmee → annulee. The room status is left
// untouched: the room was never occupied.
func (s *ReservationService) Cancel(hotelID, reservationID uint, reason string) (*models.Reservation, error) {
	var reservation models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, hotelID, reservationID, &reservation); err != nil {
			return err
		}
		switch reservation.Status {
		case models.ReservationPending, models.ReservationConfirmed:
		default:
			return fmt.Errorf("%w: cannot cancel a %s reservation", ErrInvalidState, reservation.Status)
		}

		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":        models.ReservationCanceled,
			"cancel_reason": strings.TrimSpace(reason),
		}).Error; err != nil {
			return fmt.Errorf("failed to cancel reservation: %w", err)
		}
		reservation.Status = models.ReservationCanceled
		reservation.CancelReason = strings.TrimSpace(reason)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notifier.ReservationCanceled(&reservation, reason)
	return &reservation, nil
}

// GetByID loads one reservation of the hotel with its relations.
func (s *ReservationService) GetByID(hotelID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.
		Preload("Room.RoomType").
		Preload("Client").
		Where("hotel_id = ?", hotelID).
		First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", reservationID, err)
	}
	return &reservation, nil
}

// GetAll lists a hotel's reservations, newest first.
func (s *ReservationService) GetAll(hotelID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Room.RoomType").
		Preload("Client").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

func lockReservation(tx *gorm.DB, hotelID, reservationID uint, out *models.Reservation) error {
	if err := lockForUpdate(tx).
		Where("hotel_id = ?", hotelID).
		First(out, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load reservation %d: %w", reservationID, err)
	}
	return nil
}
