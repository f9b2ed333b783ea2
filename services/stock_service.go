package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hotelms-backend/models"

	"gorm.io/gorm"
)

// StockService implements the stock ledger: quantity-on-hand per article,
// mutated only through movements.
type StockService struct {
	DB *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{DB: db}
}

// ApplyMovement records a movement and updates the article quantity in one
// transaction. The movement row and the quantity update succeed or fail
// together; the article row is locked for the read-validate-write sequence so
// concurrent movements cannot lose updates or drive the quantity negative.
//
// "ajustement" is additive, same as "entree". The source system never
// implemented set-to-exact-value semantics for it.
func (s *StockService) ApplyMovement(hotelID, articleID uint, movementType string, quantity int, reason string, employeeID uint) (*models.StockArticle, error) {
	movementType = strings.TrimSpace(movementType)
	switch movementType {
	case models.MovementEntry, models.MovementExit, models.MovementAdjustment:
	default:
		return nil, validationf("unknown movement type %q", movementType)
	}
	if quantity <= 0 {
		return nil, validationf("movement quantity must be positive")
	}

	var article models.StockArticle
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("hotel_id = ?", hotelID).
			First(&article, articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load article %d: %w", articleID, err)
		}

		before := article.Quantity
		var after int
		switch movementType {
		case models.MovementExit:
			if quantity > before {
				return ErrInsufficientStock
			}
			after = before - quantity
		default: // entree, ajustement
			after = before + quantity
		}

		movement := models.StockMovement{
			ArticleID:      article.ID,
			Type:           movementType,
			Quantity:       quantity,
			Reason:         strings.TrimSpace(reason),
			QuantityBefore: before,
			QuantityAfter:  after,
			EmployeeID:     employeeID,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return fmt.Errorf("failed to record movement: %w", err)
		}

		if err := tx.Model(&article).Update("quantity", after).Error; err != nil {
			return fmt.Errorf("failed to update article quantity: %w", err)
		}
		article.Quantity = after
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &article, nil
}

// LowStockAlerts returns the articles at or below their minimum threshold,
// most depleted first (ascending quantity/threshold ratio). The alert list is
// derived, never stored.
func (s *StockService) LowStockAlerts(hotelID uint) ([]models.StockArticle, error) {
	var articles []models.StockArticle
	if err := s.DB.
		Preload("Category").
		Where("hotel_id = ? AND quantity <= min_threshold", hotelID).
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to query low stock articles: %w", err)
	}

	// Ratio ordering is done here rather than in SQL so a zero threshold
	// cannot divide by zero.
	ratio := func(a models.StockArticle) float64 {
		if a.MinThreshold <= 0 {
			return 0
		}
		return float64(a.Quantity) / float64(a.MinThreshold)
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return ratio(articles[i]) < ratio(articles[j])
	})
	return articles, nil
}

// Movements returns the ledger for one article, newest first.
func (s *StockService) Movements(hotelID, articleID uint) ([]models.StockMovement, error) {
	var article models.StockArticle
	if err := s.DB.Where("hotel_id = ?", hotelID).First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load article %d: %w", articleID, err)
	}

	var movements []models.StockMovement
	if err := s.DB.
		Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").
		Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

// CreateArticle validates and persists a new stock article.
func (s *StockService) CreateArticle(article *models.StockArticle) error {
	article.Name = strings.TrimSpace(article.Name)
	if article.Name == "" {
		return validationf("article name is required")
	}
	if article.Quantity < 0 {
		return validationf("article quantity cannot be negative")
	}
	if article.MinThreshold < 0 {
		return validationf("minimum threshold cannot be negative")
	}

	var category models.StockCategory
	if err := s.DB.Where("hotel_id = ?", article.HotelID).First(&category, article.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationf("stock category %d not found", article.CategoryID)
		}
		return fmt.Errorf("failed to check category: %w", err)
	}

	if err := s.DB.Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// Articles lists a hotel's stock articles with their categories.
func (s *StockService) Articles(hotelID uint) ([]models.StockArticle, error) {
	var articles []models.StockArticle
	if err := s.DB.
		Preload("Category").
		Where("hotel_id = ?", hotelID).
		Order("name ASC").
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}
