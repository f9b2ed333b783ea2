package controllers

import (
	"net/http"

	"hotelms-backend/middleware"
	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	Service *services.EmployeeService
}

func NewEmployeeController(service *services.EmployeeService) *EmployeeController {
	return &EmployeeController{Service: service}
}

// GetEmployees handles GET /api/employees.
func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	employees, err := ec.Service.GetAll(middleware.HotelID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employees)
}

type createEmployeePayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// CreateEmployee handles POST /api/employees.
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var payload createEmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, email and password are required")
		return
	}

	employee := models.Employee{
		HotelID:  middleware.HotelID(c),
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Role:     payload.Role,
	}
	if err := ec.Service.Create(&employee, payload.Password); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, employee)
}

// UpdateEmployee handles PATCH /api/employees/:id.
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	if err := ec.Service.Update(middleware.HotelID(c), id, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "employee updated"})
}

// DeactivateEmployee handles DELETE /api/employees/:id.
func (ec *EmployeeController) DeactivateEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ec.Service.Deactivate(middleware.HotelID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "employee deactivated"})
}
