package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// GormPurchaseReportRepository implements report.PurchaseReportRepository using GORM
type GormPurchaseReportRepository struct {
	db *gorm.DB
}

// NewGormPurchaseReportRepository creates a new GormPurchaseReportRepository
func NewGormPurchaseReportRepository(db *gorm.DB) *GormPurchaseReportRepository {
	return &GormPurchaseReportRepository{db: db}
}

func (r *GormPurchaseReportRepository) base(ctx context.Context, f report.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("purchases").
		Joins("LEFT JOIN suppliers ON suppliers.id = purchases.supplier_id")
	return applyPurchaseFilter(q, f)
}

// Summary computes the filter-wide rollup over every matching row.
func (r *GormPurchaseReportRepository) Summary(ctx context.Context, f report.Filter) (report.PurchaseSummary, error) {
	excl := f.ExcludesCancelled()

	type result struct {
		TotalPurchases decimal.Decimal
		TotalPaid      decimal.Decimal
		TotalDue       decimal.Decimal
		TotalDiscount  decimal.Decimal
		TotalInvoices  int64
	}
	var res result

	err := r.base(ctx, f).
		Select(
			moneySum("purchases", "total_amount", excl) + " AS total_purchases, " +
				moneySum("purchases", "paid_amount", excl) + " AS total_paid, " +
				moneySum("purchases", "balance_amount", excl) + " AS total_due, " +
				moneySum("purchases", "discount_amount", excl) + " AS total_discount, " +
				"COUNT(*) AS total_invoices").
		Scan(&res).Error
	if err != nil {
		return report.PurchaseSummary{}, err
	}

	return report.PurchaseSummary{
		TotalPurchases: res.TotalPurchases,
		TotalPaid:      res.TotalPaid,
		TotalDue:       res.TotalDue,
		TotalDiscount:  res.TotalDiscount,
		TotalInvoices:  res.TotalInvoices,
	}, nil
}

// Count returns the number of rows the detail query would yield.
func (r *GormPurchaseReportRepository) Count(ctx context.Context, f report.Filter) (int64, error) {
	var count int64
	err := r.base(ctx, f).Count(&count).Error
	return count, err
}

// Rows fetches one sorted page of detail rows.
func (r *GormPurchaseReportRepository) Rows(ctx context.Context, f report.Filter, orderBy string, page report.PageRequest) ([]report.PurchaseRow, error) {
	q := r.base(ctx, f).
		Select(`purchases.id, purchases.invoice_number, COALESCE(suppliers.name, '') AS supplier_name,
			purchases.invoice_date, purchases.due_date, purchases.total_amount, purchases.paid_amount,
			purchases.balance_amount, purchases.status`).
		Order(orderBy)

	if !page.All {
		q = q.Offset(page.Offset()).Limit(page.PerPage)
	}

	var rows []report.PurchaseRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var _ report.PurchaseReportRepository = (*GormPurchaseReportRepository)(nil)
