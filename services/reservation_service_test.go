package services

import (
	"testing"
	"time"

	"hotelms-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	a := date(2025, 3, 1)
	b := date(2025, 3, 5)

	cases := []struct {
		name           string
		a2, d2         time.Time
		expectConflict bool
	}{
		{"identical ranges", date(2025, 3, 1), date(2025, 3, 5), true},
		{"contained range", date(2025, 3, 2), date(2025, 3, 4), true},
		{"overlaps start", date(2025, 2, 27), date(2025, 3, 2), true},
		{"overlaps end", date(2025, 3, 4), date(2025, 3, 6), true},
		{"surrounds", date(2025, 2, 27), date(2025, 3, 7), true},
		{"back to back after", date(2025, 3, 5), date(2025, 3, 7), false},
		{"back to back before", date(2025, 2, 27), date(2025, 3, 1), false},
		{"fully before", date(2025, 2, 1), date(2025, 2, 10), false},
		{"fully after", date(2025, 4, 1), date(2025, 4, 10), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectConflict, intervalsOverlap(a, b, tc.a2, tc.d2))
			// The relation is symmetric.
			assert.Equal(t, tc.expectConflict, intervalsOverlap(tc.a2, tc.d2, a, b))
		})
	}
}

func TestCreateReservationAndAvailability(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	standard := seedRoomType(t, db, hotel.ID, "Standard", 50000, 2)
	room101 := seedRoom(t, db, hotel.ID, standard.ID, "101")
	client := seedClient(t, db, "alice")
	svc := NewReservationService(db, nil)

	arrival := futureDate(30)
	departure := futureDate(34) // 4 nights

	resA, err := svc.Create(hotel.ID, CreateInput{
		RoomID:    room101.ID,
		ClientID:  client.ID,
		Arrival:   arrival,
		Departure: departure,
		Adults:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, resA.Status)
	assert.Equal(t, float64(200000), resA.TotalPrice)
	assert.Nil(t, resA.Number)

	// Overlapping request: room 101 must be excluded.
	rooms, err := svc.CheckAvailability(hotel.ID, AvailabilityQuery{
		Arrival:   futureDate(33),
		Departure: futureDate(35),
		Adults:    2,
	})
	require.NoError(t, err)
	assert.Empty(t, rooms)

	// Back-to-back: arrival on the departure day does not conflict.
	rooms, err = svc.CheckAvailability(hotel.ID, AvailabilityQuery{
		Arrival:   departure,
		Departure: futureDate(36),
		Adults:    2,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, room101.ID, rooms[0].ID)

	// Creating the overlapping reservation fails and writes nothing.
	_, err = svc.Create(hotel.ID, CreateInput{
		RoomID:    room101.ID,
		ClientID:  client.ID,
		Arrival:   futureDate(33),
		Departure: futureDate(35),
		Adults:    1,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The back-to-back reservation succeeds.
	resC, err := svc.Create(hotel.ID, CreateInput{
		RoomID:    room101.ID,
		ClientID:  client.ID,
		Arrival:   departure,
		Departure: futureDate(36),
		Adults:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(100000), resC.TotalPrice)
}

func TestCreateReservationValidation(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	standard := seedRoomType(t, db, hotel.ID, "Standard", 50000, 2)
	room := seedRoom(t, db, hotel.ID, standard.ID, "101")
	client := seedClient(t, db, "bob")
	svc := NewReservationService(db, nil)

	_, err := svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(10), Adults: 1,
	})
	assert.True(t, IsValidation(err), "same-day departure must be rejected")

	_, err = svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(12), Departure: futureDate(10), Adults: 1,
	})
	assert.True(t, IsValidation(err), "departure before arrival must be rejected")

	_, err = svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(-2), Departure: futureDate(2), Adults: 1,
	})
	assert.True(t, IsValidation(err), "past arrival must be rejected")

	_, err = svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 0,
	})
	assert.True(t, IsValidation(err), "zero adults must be rejected")

	_, err = svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 2, Children: 1,
	})
	assert.True(t, IsValidation(err), "party above type capacity must be rejected")

	_, err = svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: 9999,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 1,
	})
	assert.True(t, IsValidation(err), "unknown client must be rejected")
}

func TestAvailabilityCapacityFilter(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	small := seedRoomType(t, db, hotel.ID, "Single", 30000, 1)
	large := seedRoomType(t, db, hotel.ID, "Family", 90000, 4)
	seedRoom(t, db, hotel.ID, small.ID, "201")
	family := seedRoom(t, db, hotel.ID, large.ID, "202")
	svc := NewReservationService(db, nil)

	rooms, err := svc.CheckAvailability(hotel.ID, AvailabilityQuery{
		Arrival: futureDate(5), Departure: futureDate(7), Adults: 2, Children: 1,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, family.ID, rooms[0].ID)

	// Filtering by type only considers that type's rooms.
	rooms, err = svc.CheckAvailability(hotel.ID, AvailabilityQuery{
		RoomTypeID: &small.ID,
		Arrival:    futureDate(5), Departure: futureDate(7), Adults: 1,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "201", rooms[0].Number)
}

type recordingNotifier struct {
	confirmed int
	canceled  int
}

func (n *recordingNotifier) ReservationConfirmed(*models.Reservation)        { n.confirmed++ }
func (n *recordingNotifier) ReservationCanceled(*models.Reservation, string) { n.canceled++ }

func TestReservationLifecycle(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	standard := seedRoomType(t, db, hotel.ID, "Standard", 50000, 2)
	room := seedRoom(t, db, hotel.ID, standard.ID, "101")
	client := seedClient(t, db, "carol")
	notifier := &recordingNotifier{}
	svc := NewReservationService(db, notifier)

	res, err := svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 2,
	})
	require.NoError(t, err)

	// Check-out and check-in are unreachable before confirmation.
	_, err = svc.CheckIn(hotel.ID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = svc.CheckOut(hotel.ID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	res, err = svc.Confirm(hotel.ID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	require.NotNil(t, res.Number)
	assert.Regexp(t, `^RES-[A-Z0-9]{8}$`, *res.Number)
	assert.Equal(t, 1, notifier.confirmed)

	// Confirming twice fails cleanly, without a second notification.
	_, err = svc.Confirm(hotel.ID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 1, notifier.confirmed)

	// A pending or confirmed reservation leaves the room status untouched.
	currentRoom, err := NewRoomService(db).GetByID(hotel.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, currentRoom.Status)

	res, err = svc.CheckIn(hotel.ID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCheckedIn, res.Status)
	assert.NotNil(t, res.CheckedInAt)

	currentRoom, err = NewRoomService(db).GetByID(hotel.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusOccupied, currentRoom.Status)

	_, err = svc.CheckIn(hotel.ID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	// Cancel is only reachable from en_attente and confirmee.
	_, err = svc.Cancel(hotel.ID, res.ID, "changed plans")
	assert.ErrorIs(t, err, ErrInvalidState)

	res, err = svc.CheckOut(hotel.ID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationFinished, res.Status)
	assert.NotNil(t, res.CheckedOutAt)

	// Check-out sends the room to cleaning, never straight to available.
	currentRoom, err = NewRoomService(db).GetByID(hotel.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusCleaning, currentRoom.Status)

	_, err = svc.CheckOut(hotel.ID, res.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelReservation(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	standard := seedRoomType(t, db, hotel.ID, "Standard", 50000, 2)
	room := seedRoom(t, db, hotel.ID, standard.ID, "101")
	client := seedClient(t, db, "dave")
	notifier := &recordingNotifier{}
	svc := NewReservationService(db, notifier)

	pending, err := svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 1,
	})
	require.NoError(t, err)

	canceled, err := svc.Cancel(hotel.ID, pending.ID, "no longer needed")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCanceled, canceled.Status)
	assert.Equal(t, "no longer needed", canceled.CancelReason)
	assert.Equal(t, 1, notifier.canceled)

	// A canceled reservation frees the dates.
	rooms, err := svc.CheckAvailability(hotel.ID, AvailabilityQuery{
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 1,
	})
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// Cancel from confirmed works too; the room status never changes.
	confirmed, err := svc.Create(hotel.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 1,
	})
	require.NoError(t, err)
	confirmed, err = svc.Confirm(hotel.ID, confirmed.ID)
	require.NoError(t, err)
	_, err = svc.Cancel(hotel.ID, confirmed.ID, "")
	require.NoError(t, err)

	currentRoom, err := NewRoomService(db).GetByID(hotel.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, currentRoom.Status)

	_, err = svc.Cancel(hotel.ID, confirmed.ID, "again")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestReservationHotelScoping(t *testing.T) {
	db := newTestDB(t)
	hotelA := seedHotel(t, db)
	hotelB := seedHotel(t, db)
	standard := seedRoomType(t, db, hotelA.ID, "Standard", 50000, 2)
	room := seedRoom(t, db, hotelA.ID, standard.ID, "101")
	client := seedClient(t, db, "eve")
	svc := NewReservationService(db, nil)

	res, err := svc.Create(hotelA.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(10), Departure: futureDate(12), Adults: 1,
	})
	require.NoError(t, err)

	// Another hotel cannot see or mutate the reservation.
	_, err = svc.GetByID(hotelB.ID, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Confirm(hotelB.ID, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Nor book rooms of hotel A.
	_, err = svc.Create(hotelB.ID, CreateInput{
		RoomID: room.ID, ClientID: client.ID,
		Arrival: futureDate(20), Departure: futureDate(22), Adults: 1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
