package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// GormDashboardRepository implements report.DashboardRepository using
// GORM. Every monetary total excludes cancelled invoices.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

func (r *GormDashboardRepository) sumBetween(ctx context.Context, table string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table(table).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("invoice_date BETWEEN ? AND ?", from, to).
		Where("status <> 'cancelled'").
		Scan(&total).Error
	return total, err
}

// SalesTotalBetween sums non-cancelled sales in the inclusive range.
func (r *GormDashboardRepository) SalesTotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sumBetween(ctx, "sales", from, to)
}

// PurchaseTotalBetween sums non-cancelled purchases in the inclusive range.
func (r *GormDashboardRepository) PurchaseTotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sumBetween(ctx, "purchases", from, to)
}

func (r *GormDashboardRepository) dueTotal(ctx context.Context, table, partyColumn string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table(table).
		Select("COALESCE(SUM(balance_amount), 0)").
		Where("balance_amount > 0").
		Where(partyColumn + " IS NOT NULL").
		Where("status <> 'cancelled'").
		Scan(&total).Error
	return total, err
}

// CustomerDueTotal is the outstanding receivables balance.
func (r *GormDashboardRepository) CustomerDueTotal(ctx context.Context) (decimal.Decimal, error) {
	return r.dueTotal(ctx, "sales", "customer_id")
}

// SupplierDueTotal is the outstanding payables balance.
func (r *GormDashboardRepository) SupplierDueTotal(ctx context.Context) (decimal.Decimal, error) {
	return r.dueTotal(ctx, "purchases", "supplier_id")
}

// ProductCount counts active products.
func (r *GormDashboardRepository) ProductCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("products").
		Where("is_active = true").
		Count(&count).Error
	return count, err
}

// LowStockCount counts stock rows strictly below their product's
// minimum level. The alert boundary is strict, unlike the stock
// report's low_stock_only filter.
func (r *GormDashboardRepository) LowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("stocks").
		Joins("JOIN products ON products.id = stocks.product_id").
		Where(lowStockAlertCondition).
		Count(&count).Error
	return count, err
}

func (r *GormDashboardRepository) activeCount(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("is_active = true").
		Count(&count).Error
	return count, err
}

// ActiveCustomerCount counts active customers.
func (r *GormDashboardRepository) ActiveCustomerCount(ctx context.Context) (int64, error) {
	return r.activeCount(ctx, "customers")
}

// ActiveSupplierCount counts active suppliers.
func (r *GormDashboardRepository) ActiveSupplierCount(ctx context.Context) (int64, error) {
	return r.activeCount(ctx, "suppliers")
}

// SalesAmountsBetween returns every non-cancelled sale amount with its
// invoice date, the raw input for trend bucketing.
func (r *GormDashboardRepository) SalesAmountsBetween(ctx context.Context, from, to time.Time) ([]report.DatedAmount, error) {
	type result struct {
		Date   time.Time
		Amount decimal.Decimal
	}
	var results []result

	err := r.db.WithContext(ctx).
		Table("sales").
		Select("invoice_date AS date, total_amount AS amount").
		Where("invoice_date BETWEEN ? AND ?", from, to).
		Where("status <> 'cancelled'").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.DatedAmount, len(results))
	for i, row := range results {
		rows[i] = report.DatedAmount{Date: row.Date, Amount: row.Amount}
	}
	return rows, nil
}

// ProfitItemsBetween returns the sale lines needed to compute profit
// for the period.
func (r *GormDashboardRepository) ProfitItemsBetween(ctx context.Context, from, to time.Time) ([]report.ProfitItem, error) {
	repo := GormProfitReportRepository{db: r.db}
	return repo.Items(ctx, report.Filter{DateFrom: &from, DateTo: &to})
}

// TopProducts returns the best sellers by revenue for the period.
func (r *GormDashboardRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]report.TopProduct, error) {
	repo := GormSalesReportRepository{db: r.db}
	return repo.TopProducts(ctx, report.Filter{DateFrom: &from, DateTo: &to}, limit)
}

// TopCustomers returns the highest-revenue customers for the period.
func (r *GormDashboardRepository) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]report.TopCustomer, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		CustomerID   uuid.UUID
		Name         string
		InvoiceCount int64
		Total        decimal.Decimal
	}
	var results []result

	err := r.db.WithContext(ctx).
		Table("sales").
		Select(`sales.customer_id, customers.name,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(sales.total_amount), 0) AS total`).
		Joins("JOIN customers ON customers.id = sales.customer_id").
		Where("sales.invoice_date BETWEEN ? AND ?", from, to).
		Where("sales.status <> 'cancelled'").
		Group("sales.customer_id, customers.name").
		Order("total DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	top := make([]report.TopCustomer, len(results))
	for i, row := range results {
		top[i] = report.TopCustomer{
			CustomerID:   row.CustomerID,
			Name:         row.Name,
			InvoiceCount: row.InvoiceCount,
			Total:        row.Total,
		}
	}
	return top, nil
}

// LowStockItems lists the most depleted products relative to their
// minimum level. Needed is how much is missing to reach the minimum.
func (r *GormDashboardRepository) LowStockItems(ctx context.Context, limit int) ([]report.LowStockItem, error) {
	if limit <= 0 {
		limit = 10
	}

	type result struct {
		ProductID         uuid.UUID
		Name              string
		SKU               string
		WarehouseName     string
		Quantity          decimal.Decimal
		MinimumStockLevel decimal.Decimal
	}
	var results []result

	err := r.db.WithContext(ctx).
		Table("stocks").
		Select(`stocks.product_id, products.name, products.sku, warehouses.name AS warehouse_name,
			stocks.quantity, products.minimum_stock_level`).
		Joins("JOIN products ON products.id = stocks.product_id").
		Joins("JOIN warehouses ON warehouses.id = stocks.warehouse_id").
		Where(lowStockAlertCondition).
		Order("(products.minimum_stock_level - stocks.quantity) DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	items := make([]report.LowStockItem, len(results))
	for i, row := range results {
		needed := row.MinimumStockLevel.Sub(row.Quantity)
		if needed.IsNegative() {
			needed = decimal.Zero
		}
		items[i] = report.LowStockItem{
			ProductID:         row.ProductID,
			Name:              row.Name,
			SKU:               row.SKU,
			WarehouseName:     row.WarehouseName,
			Quantity:          row.Quantity,
			MinimumStockLevel: row.MinimumStockLevel,
			Needed:            needed,
		}
	}
	return items, nil
}

// RecentSales returns the newest sales for the dashboard feed.
func (r *GormDashboardRepository) RecentSales(ctx context.Context, limit int) ([]report.SalesRow, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []report.SalesRow
	err := r.db.WithContext(ctx).
		Table("sales").
		Select(`sales.id, sales.invoice_number, COALESCE(customers.name, '') AS customer_name,
			sales.invoice_date, sales.due_date, sales.total_amount, sales.paid_amount,
			sales.balance_amount, sales.status`).
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id").
		Order("sales.invoice_date DESC, sales.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
