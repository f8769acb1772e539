package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Product is a sellable item. PurchasePrice is the cost basis used by
// profit and stock-value calculations.
type Product struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name              string          `gorm:"column:name;size:255;not null" json:"name"`
	SKU               string          `gorm:"column:sku;size:100;uniqueIndex;not null" json:"sku"`
	CategoryID        *uuid.UUID      `gorm:"column:category_id;type:uuid" json:"category_id,omitempty"`
	UnitID            *uuid.UUID      `gorm:"column:unit_id;type:uuid" json:"unit_id,omitempty"`
	PurchasePrice     decimal.Decimal `gorm:"column:purchase_price;type:decimal(20,4);default:0" json:"purchase_price"`
	SalePrice         decimal.Decimal `gorm:"column:sale_price;type:decimal(20,4);default:0" json:"sale_price"`
	MinimumStockLevel decimal.Decimal `gorm:"column:minimum_stock_level;type:decimal(20,4);default:0" json:"minimum_stock_level"`
	Description       string          `gorm:"column:description;type:text" json:"description,omitempty"`
	IsActive          bool            `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt         time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Validate checks the invariants enforced on the write path.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(p.SKU) == "" {
		return shared.NewValidationError("sku", "is required")
	}
	if p.PurchasePrice.IsNegative() {
		return shared.NewValidationError("purchase_price", "cannot be negative")
	}
	if p.SalePrice.IsNegative() {
		return shared.NewValidationError("sale_price", "cannot be negative")
	}
	if p.MinimumStockLevel.IsNegative() {
		return shared.NewValidationError("minimum_stock_level", "cannot be negative")
	}
	return nil
}
