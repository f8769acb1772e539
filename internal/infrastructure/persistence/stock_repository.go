package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/inventory"
	"github.com/shopstack/backend/internal/domain/shared"
)

// GormStockRepository implements inventory.StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) Upsert(ctx context.Context, stock *inventory.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *GormStockRepository) FindByProductAndWarehouse(ctx context.Context, productID, warehouseID uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// AdjustQuantity applies a signed delta to the stock row, creating it
// when missing. The row is locked for the duration of the transaction
// so concurrent invoice captures cannot lose updates.
func (r *GormStockRepository) AdjustQuantity(ctx context.Context, productID, warehouseID uuid.UUID, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stock inventory.Stock
		err := tx.Raw(
			"SELECT * FROM stocks WHERE product_id = ? AND warehouse_id = ? FOR UPDATE",
			productID, warehouseID,
		).Scan(&stock).Error
		if err != nil {
			return err
		}

		if stock.ID == uuid.Nil {
			stock = inventory.Stock{
				ID:          uuid.New(),
				ProductID:   productID,
				WarehouseID: warehouseID,
				Quantity:    decimal.Zero,
				CreatedAt:   time.Now(),
			}
		}
		if err := stock.Adjust(delta); err != nil {
			return err
		}
		stock.UpdatedAt = time.Now()
		return tx.Save(&stock).Error
	})
}

var _ inventory.StockRepository = (*GormStockRepository)(nil)
