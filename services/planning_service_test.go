package services

import (
	"strconv"
	"testing"
	"time"

	"hotelms-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	monday := date(2025, 3, 3)

	assert.Equal(t, monday, WeekStart(monday))
	assert.Equal(t, monday, WeekStart(date(2025, 3, 5)), "midweek rolls back to Monday")
	assert.Equal(t, monday, WeekStart(date(2025, 3, 8)), "Saturday rolls back to Monday")
	// Sunday belongs to the week that started six days earlier, not the next one.
	assert.Equal(t, monday, WeekStart(date(2025, 3, 9)))
	assert.Equal(t, date(2025, 3, 10), WeekStart(date(2025, 3, 10)))

	// Time-of-day is irrelevant.
	assert.Equal(t, monday, WeekStart(time.Date(2025, 3, 6, 23, 15, 0, 0, time.UTC)))
}

func TestGetPlanningDefaults(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	active := seedEmployee(t, db, hotel.ID, "anna", models.RoleReceptionist)
	inactive := seedEmployee(t, db, hotel.ID, "bruno", models.RoleHousekeeping)
	require.NoError(t, db.Model(inactive).Update("active", false).Error)
	svc := NewPlanningService(db)

	monday := WeekStart(time.Now().UTC())

	_, err := svc.GetPlanning(hotel.ID, monday.AddDate(0, 0, 1))
	assert.True(t, IsValidation(err), "non-Monday week start must be rejected")

	grid, err := svc.GetPlanning(hotel.ID, monday)
	require.NoError(t, err)
	require.Len(t, grid, 1, "inactive employees are excluded")
	assert.Equal(t, active.ID, grid[0].Employee.ID)

	// No saved entry: every slot is blank, not "repos".
	require.Len(t, grid[0].Slots, 7)
	for d := 1; d <= 7; d++ {
		assert.Equal(t, "", grid[0].Slots[strconv.Itoa(d)])
	}
}

func TestSavePlanning(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	employee := seedEmployee(t, db, hotel.ID, "chloe", models.RoleReceptionist)
	svc := NewPlanningService(db)

	monday := WeekStart(time.Now().UTC())

	err := svc.SavePlanning(hotel.ID, monday.AddDate(0, 0, 3), nil)
	assert.True(t, IsValidation(err), "non-Monday week start must be rejected")

	err = svc.SavePlanning(hotel.ID, monday, []SlotsInput{{EmployeeID: 9999, Slots: map[string]string{}}})
	assert.True(t, IsValidation(err), "unknown employee must be rejected")

	// Blank and missing slots are both normalized to "repos" on save.
	require.NoError(t, svc.SavePlanning(hotel.ID, monday, []SlotsInput{{
		EmployeeID: employee.ID,
		Slots: map[string]string{
			"1": "09:00-17:00",
			"2": "  ",
			"3": "14:00-22:00",
		},
	}}))

	grid, err := svc.GetPlanning(hotel.ID, monday)
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, "09:00-17:00", grid[0].Slots["1"])
	assert.Equal(t, models.RestSlot, grid[0].Slots["2"])
	assert.Equal(t, "14:00-22:00", grid[0].Slots["3"])
	for _, day := range []string{"4", "5", "6", "7"} {
		assert.Equal(t, models.RestSlot, grid[0].Slots[day])
	}

	// Saving the same week again updates in place: one row per
	// (employee, week), no duplicates.
	require.NoError(t, svc.SavePlanning(hotel.ID, monday, []SlotsInput{{
		EmployeeID: employee.ID,
		Slots:      map[string]string{"1": "07:00-15:00"},
	}}))

	var count int64
	require.NoError(t, db.Model(&models.PlanningEntry{}).
		Where("employee_id = ? AND week_start = ?", employee.ID, monday).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	grid, err = svc.GetPlanning(hotel.ID, monday)
	require.NoError(t, err)
	assert.Equal(t, "07:00-15:00", grid[0].Slots["1"])
	assert.Equal(t, models.RestSlot, grid[0].Slots["3"], "unsent slots reset to rest")

	// Another week stands alone.
	nextMonday := monday.AddDate(0, 0, 7)
	grid, err = svc.GetPlanning(hotel.ID, nextMonday)
	require.NoError(t, err)
	assert.Equal(t, "", grid[0].Slots["1"])
}

func TestSavePlanningScopedToHotel(t *testing.T) {
	db := newTestDB(t)
	hotelA := seedHotel(t, db)
	hotelB := seedHotel(t, db)
	employee := seedEmployee(t, db, hotelA.ID, "diego", models.RoleManager)
	svc := NewPlanningService(db)

	monday := WeekStart(time.Now().UTC())

	err := svc.SavePlanning(hotelB.ID, monday, []SlotsInput{{
		EmployeeID: employee.ID,
		Slots:      map[string]string{"1": "09:00-17:00"},
	}})
	assert.True(t, IsValidation(err), "cannot schedule another hotel's employee")
}
