package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// GormSalesReportRepository implements report.SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

func (r *GormSalesReportRepository) base(ctx context.Context, f report.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("sales").
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id")
	return applySalesFilter(q, f)
}

// Summary computes the filter-wide rollup over every matching row.
func (r *GormSalesReportRepository) Summary(ctx context.Context, f report.Filter) (report.SalesSummary, error) {
	excl := f.ExcludesCancelled()

	type result struct {
		TotalSales    decimal.Decimal
		TotalPaid     decimal.Decimal
		TotalDue      decimal.Decimal
		TotalDiscount decimal.Decimal
		TotalInvoices int64
	}
	var res result

	err := r.base(ctx, f).
		Select(
			moneySum("sales", "total_amount", excl) + " AS total_sales, " +
				moneySum("sales", "paid_amount", excl) + " AS total_paid, " +
				moneySum("sales", "balance_amount", excl) + " AS total_due, " +
				moneySum("sales", "discount_amount", excl) + " AS total_discount, " +
				"COUNT(*) AS total_invoices").
		Scan(&res).Error
	if err != nil {
		return report.SalesSummary{}, err
	}

	return report.SalesSummary{
		TotalSales:    res.TotalSales,
		TotalPaid:     res.TotalPaid,
		TotalDue:      res.TotalDue,
		TotalDiscount: res.TotalDiscount,
		TotalInvoices: res.TotalInvoices,
	}, nil
}

// Count returns the number of rows the detail query would yield.
func (r *GormSalesReportRepository) Count(ctx context.Context, f report.Filter) (int64, error) {
	var count int64
	err := r.base(ctx, f).Count(&count).Error
	return count, err
}

// Rows fetches one sorted page of detail rows.
func (r *GormSalesReportRepository) Rows(ctx context.Context, f report.Filter, orderBy string, page report.PageRequest) ([]report.SalesRow, error) {
	q := r.base(ctx, f).
		Select(`sales.id, sales.invoice_number, COALESCE(customers.name, '') AS customer_name,
			sales.invoice_date, sales.due_date, sales.total_amount, sales.paid_amount,
			sales.balance_amount, sales.status`).
		Order(orderBy)

	if !page.All {
		q = q.Offset(page.Offset()).Limit(page.PerPage)
	}

	var rows []report.SalesRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopProducts returns the best-selling products by revenue within the
// filtered sales.
func (r *GormSalesReportRepository) TopProducts(ctx context.Context, f report.Filter, limit int) ([]report.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		ProductID    uuid.UUID
		Name         string
		QuantitySold decimal.Decimal
		Revenue      decimal.Decimal
	}
	var results []result

	q := r.db.WithContext(ctx).
		Table("sale_items").
		Select(`sale_items.product_id, products.name,
			COALESCE(SUM(sale_items.quantity), 0) AS quantity_sold,
			COALESCE(SUM(sale_items.total), 0) AS revenue`).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id")
	q = applySalesFilter(q, f)
	if f.ExcludesCancelled() {
		q = q.Where("sales.status <> 'cancelled'")
	}

	err := q.Group("sale_items.product_id, products.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	top := make([]report.TopProduct, len(results))
	for i, row := range results {
		top[i] = report.TopProduct{
			ProductID:    row.ProductID,
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		}
	}
	return top, nil
}

var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
