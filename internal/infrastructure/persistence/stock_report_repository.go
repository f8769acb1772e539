package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// GormStockReportRepository implements report.StockReportRepository using GORM
type GormStockReportRepository struct {
	db *gorm.DB
}

// NewGormStockReportRepository creates a new GormStockReportRepository
func NewGormStockReportRepository(db *gorm.DB) *GormStockReportRepository {
	return &GormStockReportRepository{db: db}
}

func (r *GormStockReportRepository) base(ctx context.Context, f report.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("stocks").
		Joins("JOIN products ON products.id = stocks.product_id").
		Joins("JOIN warehouses ON warehouses.id = stocks.warehouse_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
	return applyStockFilter(q, f)
}

// Summary computes the filter-wide stock rollup. Stock value uses the
// product's current purchase price as cost basis.
func (r *GormStockReportRepository) Summary(ctx context.Context, f report.Filter) (report.StockSummary, error) {
	type result struct {
		TotalItems      int64
		TotalQuantity   decimal.Decimal
		TotalStockValue decimal.Decimal
		LowStockCount   int64
		OutOfStockCount int64
	}
	var res result

	err := r.base(ctx, f).
		Select(`COUNT(*) AS total_items,
			COALESCE(SUM(stocks.quantity), 0) AS total_quantity,
			COALESCE(SUM(stocks.quantity * products.purchase_price), 0) AS total_stock_value,
			COUNT(*) FILTER (WHERE ` + lowStockCondition + `) AS low_stock_count,
			COUNT(*) FILTER (WHERE ` + outOfStockCondition + `) AS out_of_stock_count`).
		Scan(&res).Error
	if err != nil {
		return report.StockSummary{}, err
	}

	return report.StockSummary{
		TotalItems:      res.TotalItems,
		TotalQuantity:   res.TotalQuantity,
		TotalStockValue: res.TotalStockValue,
		LowStockCount:   res.LowStockCount,
		OutOfStockCount: res.OutOfStockCount,
	}, nil
}

// Count returns the number of rows the detail query would yield.
func (r *GormStockReportRepository) Count(ctx context.Context, f report.Filter) (int64, error) {
	var count int64
	err := r.base(ctx, f).Count(&count).Error
	return count, err
}

// Rows fetches one sorted page of stock rows with their computed value
// and status.
func (r *GormStockReportRepository) Rows(ctx context.Context, f report.Filter, orderBy string, page report.PageRequest) ([]report.StockRow, error) {
	q := r.base(ctx, f).
		Select(`stocks.product_id, products.name AS product_name, products.sku,
			COALESCE(categories.name, '') AS category_name, warehouses.name AS warehouse_name,
			stocks.quantity, products.minimum_stock_level, products.purchase_price,
			(stocks.quantity * products.purchase_price) AS stock_value, ` + stockStatusSelectColumn).
		Order(orderBy)

	if !page.All {
		q = q.Offset(page.Offset()).Limit(page.PerPage)
	}

	var rows []report.StockRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var _ report.StockReportRepository = (*GormStockReportRepository)(nil)
