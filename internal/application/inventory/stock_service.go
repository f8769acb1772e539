package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/inventory"
	"github.com/shopstack/backend/internal/domain/shared"
)

// StockService handles manual stock operations. Invoice-driven stock
// movement lives with the trade services; this covers stocktakes and
// corrections.
type StockService struct {
	stockRepo inventory.StockRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// Get retrieves the stock row for one product in one warehouse.
func (s *StockService) Get(ctx context.Context, productID, warehouseID uuid.UUID) (*inventory.Stock, error) {
	return s.stockRepo.FindByProductAndWarehouse(ctx, productID, warehouseID)
}

// Set overwrites the on-hand quantity, as after a stocktake.
func (s *StockService) Set(ctx context.Context, productID, warehouseID uuid.UUID, quantity decimal.Decimal) (*inventory.Stock, error) {
	if quantity.IsNegative() {
		return nil, shared.NewValidationError("quantity", "cannot be negative")
	}

	stock := &inventory.Stock{
		ID:          uuid.New(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	}
	if err := stock.Validate(); err != nil {
		return nil, err
	}
	if err := s.stockRepo.Upsert(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// Adjust applies a signed correction to the on-hand quantity.
func (s *StockService) Adjust(ctx context.Context, productID, warehouseID uuid.UUID, delta decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewValidationError("product_id", "is required")
	}
	if warehouseID == uuid.Nil {
		return shared.NewValidationError("warehouse_id", "is required")
	}
	return s.stockRepo.AdjustQuantity(ctx, productID, warehouseID, delta)
}
