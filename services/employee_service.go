package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelms-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployeeService struct {
	DB *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

func validEmployeeRole(role string) bool {
	switch role {
	case models.RoleManager, models.RoleReceptionist, models.RoleHousekeeping:
		return true
	}
	return false
}

// Create hashes the password and persists the employee.
func (s *EmployeeService) Create(employee *models.Employee, password string) error {
	employee.FullName = strings.TrimSpace(employee.FullName)
	employee.Email = strings.ToLower(strings.TrimSpace(employee.Email))
	if employee.FullName == "" {
		return validationf("employee name is required")
	}
	if employee.Email == "" {
		return validationf("employee email is required")
	}
	if password == "" {
		return validationf("password is required")
	}
	if employee.Role == "" {
		employee.Role = models.RoleReceptionist
	}
	if !validEmployeeRole(employee.Role) {
		return validationf("unknown role %q", employee.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	employee.Password = string(hash)
	employee.Active = true

	if err := s.DB.Create(employee).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return validationf("email %q is already registered", employee.Email)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) GetAll(hotelID uint) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("full_name ASC").
		Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) GetByID(hotelID, employeeID uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Where("hotel_id = ?", hotelID).First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load employee %d: %w", employeeID, err)
	}
	return &employee, nil
}

func (s *EmployeeService) Update(hotelID, employeeID uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "hotel_id")
	delete(updates, "password")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	if role, ok := updates["role"].(string); ok && !validEmployeeRole(role) {
		return validationf("unknown role %q", role)
	}

	result := s.DB.Model(&models.Employee{}).
		Where("id = ? AND hotel_id = ?", employeeID, hotelID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update employee %d: %w", employeeID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate keeps the record (planning history references it) but blocks
// future logins and removes the employee from the planning grid.
func (s *EmployeeService) Deactivate(hotelID, employeeID uint) error {
	result := s.DB.Model(&models.Employee{}).
		Where("id = ? AND hotel_id = ?", employeeID, hotelID).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate employee %d: %w", employeeID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
