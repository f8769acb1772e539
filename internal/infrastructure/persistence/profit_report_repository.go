package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// GormProfitReportRepository implements report.ProfitReportRepository
// using GORM. It fetches the raw sale lines; the grouping and the
// profit math live in the domain layer.
type GormProfitReportRepository struct {
	db *gorm.DB
}

// NewGormProfitReportRepository creates a new GormProfitReportRepository
func NewGormProfitReportRepository(db *gorm.DB) *GormProfitReportRepository {
	return &GormProfitReportRepository{db: db}
}

// Items returns the sale lines of non-cancelled sales matching the
// filter, each carrying the product's current purchase price as cost
// basis.
func (r *GormProfitReportRepository) Items(ctx context.Context, f report.Filter) ([]report.ProfitItem, error) {
	type result struct {
		ProductID     uuid.UUID
		ProductName   string
		CategoryName  *string
		Date          time.Time
		Quantity      decimal.Decimal
		Total         decimal.Decimal
		Discount      decimal.Decimal
		PurchasePrice decimal.Decimal
	}
	var results []result

	q := r.db.WithContext(ctx).
		Table("sale_items").
		Select(`sale_items.product_id, products.name AS product_name, categories.name AS category_name,
			sales.invoice_date AS date, sale_items.quantity, sale_items.total, sale_items.discount,
			products.purchase_price`).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("sales.status <> 'cancelled'")

	if f.DateFrom != nil {
		q = q.Where("sales.invoice_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("sales.invoice_date <= ?", *f.DateTo)
	}
	if f.CategoryID != nil {
		q = q.Where("products.category_id = ?", *f.CategoryID)
	}
	if f.CustomerID != nil {
		q = q.Where("sales.customer_id = ?", *f.CustomerID)
	}
	if f.WarehouseID != nil {
		q = q.Where("sales.warehouse_id = ?", *f.WarehouseID)
	}

	if err := q.Order("sales.invoice_date ASC").Scan(&results).Error; err != nil {
		return nil, err
	}

	items := make([]report.ProfitItem, len(results))
	for i, row := range results {
		items[i] = report.ProfitItem{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			CategoryName:  row.CategoryName,
			Date:          row.Date,
			Quantity:      row.Quantity,
			Total:         row.Total,
			Discount:      row.Discount,
			PurchasePrice: row.PurchasePrice,
		}
	}
	return items, nil
}

var _ report.ProfitReportRepository = (*GormProfitReportRepository)(nil)
