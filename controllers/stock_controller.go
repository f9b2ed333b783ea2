package controllers

import (
	"net/http"

	"hotelms-backend/config"
	"hotelms-backend/middleware"
	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type StockController struct {
	Service *services.StockService
}

func NewStockController(service *services.StockService) *StockController {
	return &StockController{Service: service}
}

// GetStockCategories handles GET /api/stock/categories.
func GetStockCategories(c *gin.Context) {
	var categories []models.StockCategory
	config.DB.Where("hotel_id = ?", middleware.HotelID(c)).Order("name ASC").Find(&categories)
	utils.JSONSuccess(c, http.StatusOK, categories)
}

// CreateStockCategory handles POST /api/stock/categories.
func CreateStockCategory(c *gin.Context) {
	var category models.StockCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	category.ID = 0
	category.HotelID = middleware.HotelID(c)
	if category.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create category")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, category)
}

// GetArticles handles GET /api/stock/articles.
func (sc *StockController) GetArticles(c *gin.Context) {
	articles, err := sc.Service.Articles(middleware.HotelID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, articles)
}

// CreateArticle handles POST /api/stock/articles.
func (sc *StockController) CreateArticle(c *gin.Context) {
	var article models.StockArticle
	if err := c.ShouldBindJSON(&article); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	article.ID = 0
	article.HotelID = middleware.HotelID(c)

	if err := sc.Service.CreateArticle(&article); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, article)
}

type movementPayload struct {
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason"`
}

// ApplyMovement handles POST /api/stock/articles/:id/movements. The acting
// employee comes from the access token, not from the payload.
func (sc *StockController) ApplyMovement(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload movementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "type and quantity are required")
		return
	}

	article, err := sc.Service.ApplyMovement(
		middleware.HotelID(c), id,
		payload.Type, payload.Quantity, payload.Reason,
		middleware.ActorID(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, article)
}

// GetMovements handles GET /api/stock/articles/:id/movements.
func (sc *StockController) GetMovements(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	movements, err := sc.Service.Movements(middleware.HotelID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, movements)
}

// GetAlerts handles GET /api/stock/alerts.
func (sc *StockController) GetAlerts(c *gin.Context) {
	alerts, err := sc.Service.LowStockAlerts(middleware.HotelID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, alerts)
}
