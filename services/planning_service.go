package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotelms-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanningService manages the weekly shift grid: one row per (employee,
// week), slots keyed "1" (Monday) through "7" (Sunday).
type PlanningService struct {
	DB *gorm.DB
}

func NewPlanningService(db *gorm.DB) *PlanningService {
	return &PlanningService{DB: db}
}

// WeekStart returns the Monday of the week containing t, at midnight UTC.
// ISO convention: Monday is day 1 and Sunday day 7, so a Sunday rolls back
// six days rather than forward.
func WeekStart(t time.Time) time.Time {
	day := dateOnly(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// EmployeePlanning is one row of the grid as served to the frontend.
type EmployeePlanning struct {
	Employee models.Employee   `json:"employee"`
	Slots    map[string]string `json:"slots"`
}

// emptySlots is the default for an employee with no saved entry: all slots
// blank, not "repos". Blank only becomes "repos" when the week is saved.
func emptySlots() map[string]string {
	slots := make(map[string]string, 7)
	for d := 1; d <= 7; d++ {
		slots[strconv.Itoa(d)] = ""
	}
	return slots
}

// GetPlanning returns the grid for every active employee of the hotel for
// the given week.
func (s *PlanningService) GetPlanning(hotelID uint, weekStart time.Time) ([]EmployeePlanning, error) {
	weekStart = dateOnly(weekStart)
	if weekStart.Weekday() != time.Monday {
		return nil, validationf("week start must be a Monday")
	}

	var employees []models.Employee
	if err := s.DB.
		Where("hotel_id = ? AND active = ?", hotelID, true).
		Order("full_name ASC").
		Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var entries []models.PlanningEntry
	if err := s.DB.
		Where("hotel_id = ? AND week_start = ?", hotelID, weekStart).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load planning entries: %w", err)
	}
	byEmployee := make(map[uint]models.PlanningEntry, len(entries))
	for _, e := range entries {
		byEmployee[e.EmployeeID] = e
	}

	grid := make([]EmployeePlanning, 0, len(employees))
	for _, emp := range employees {
		slots := emptySlots()
		if entry, ok := byEmployee[emp.ID]; ok {
			var stored map[string]string
			if err := json.Unmarshal(entry.Slots, &stored); err != nil {
				return nil, fmt.Errorf("corrupt slots for employee %d: %w", emp.ID, err)
			}
			for day, value := range stored {
				if _, known := slots[day]; known {
					slots[day] = value
				}
			}
		}
		grid = append(grid, EmployeePlanning{Employee: emp, Slots: slots})
	}
	return grid, nil
}

// SlotsInput is the per-employee payload of SavePlanning.
type SlotsInput struct {
	EmployeeID uint              `json:"employee_id"`
	Slots      map[string]string `json:"slots"`
}

// SavePlanning upserts one entry per (employee, week). Blank slot values are
// normalized to "repos" before persisting: in the UI a blank cell means a
// rest day.
func (s *PlanningService) SavePlanning(hotelID uint, weekStart time.Time, inputs []SlotsInput) error {
	weekStart = dateOnly(weekStart)
	if weekStart.Weekday() != time.Monday {
		return validationf("week start must be a Monday")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			var employee models.Employee
			if err := tx.Where("hotel_id = ?", hotelID).First(&employee, in.EmployeeID).Error; err != nil {
				return validationf("employee %d not found", in.EmployeeID)
			}

			normalized := make(map[string]string, 7)
			for d := 1; d <= 7; d++ {
				key := strconv.Itoa(d)
				value := strings.TrimSpace(in.Slots[key])
				if value == "" {
					value = models.RestSlot
				}
				normalized[key] = value
			}
			raw, err := json.Marshal(normalized)
			if err != nil {
				return fmt.Errorf("failed to encode slots: %w", err)
			}

			entry := models.PlanningEntry{
				HotelID:    hotelID,
				EmployeeID: in.EmployeeID,
				WeekStart:  weekStart,
				Slots:      datatypes.JSON(raw),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "employee_id"}, {Name: "week_start"}},
				DoUpdates: clause.AssignmentColumns([]string{"slots", "updated_at"}),
			}).Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to save planning for employee %d: %w", in.EmployeeID, err)
			}
		}
		return nil
	})
}
