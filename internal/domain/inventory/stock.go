package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Stock is the on-hand quantity of one product in one warehouse.
type Stock struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_stock_product_warehouse" json:"product_id"`
	WarehouseID uuid.UUID       `gorm:"column:warehouse_id;type:uuid;not null;uniqueIndex:idx_stock_product_warehouse" json:"warehouse_id"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(20,4);default:0" json:"quantity"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Stock) TableName() string {
	return "stocks"
}

func (s *Stock) Validate() error {
	if s.ProductID == uuid.Nil {
		return shared.NewValidationError("product_id", "is required")
	}
	if s.WarehouseID == uuid.Nil {
		return shared.NewValidationError("warehouse_id", "is required")
	}
	return nil
}

// Adjust applies a signed quantity delta. Stock may not go negative.
func (s *Stock) Adjust(delta decimal.Decimal) error {
	next := s.Quantity.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "stock quantity cannot go negative")
	}
	s.Quantity = next
	return nil
}

// StockRepository defines persistence operations for stock rows
type StockRepository interface {
	Upsert(ctx context.Context, stock *Stock) error
	FindByProductAndWarehouse(ctx context.Context, productID, warehouseID uuid.UUID) (*Stock, error)
	AdjustQuantity(ctx context.Context, productID, warehouseID uuid.UUID, delta decimal.Decimal) error
}
