package models

import "time"

// Stock movement types, stored and displayed verbatim.
const (
	MovementEntry      = "entree"
	MovementExit       = "sortie"
	MovementAdjustment = "ajustement"
)

// StockMovement is an append-only ledger row: movements are never updated or
// deleted once written.
type StockMovement struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ArticleID uint `gorm:"index;not null" json:"article_id"`

	Type     string `gorm:"size:20;not null" json:"type"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Reason   string `gorm:"size:255" json:"reason"`
	// QuantityBefore/After snapshot the article quantity around the movement.
	QuantityBefore int `gorm:"not null" json:"quantity_before"`
	QuantityAfter  int `gorm:"not null" json:"quantity_after"`

	EmployeeID uint `gorm:"index" json:"employee_id"`

	CreatedAt time.Time `json:"created_at"`

	Article  StockArticle `gorm:"foreignKey:ArticleID" json:"-"`
	Employee Employee     `gorm:"foreignKey:EmployeeID" json:"-"`
}
