package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// GormDueReportRepository implements report.DueReportRepository using
// GORM. The party side (customer receivables or supplier payables) is
// selected by the filter's PartyType.
type GormDueReportRepository struct {
	db *gorm.DB
}

// NewGormDueReportRepository creates a new GormDueReportRepository
func NewGormDueReportRepository(db *gorm.DB) *GormDueReportRepository {
	return &GormDueReportRepository{db: db}
}

type dueSide struct {
	invoiceTable string
	partyTable   string
	partyColumn  string
	dateColumn   string
}

func sideFor(f report.Filter) dueSide {
	if f.PartyType == report.PartySupplier {
		return dueSide{
			invoiceTable: "purchases",
			partyTable:   "suppliers",
			partyColumn:  "purchases.supplier_id",
			dateColumn:   "purchases.invoice_date",
		}
	}
	return dueSide{
		invoiceTable: "sales",
		partyTable:   "customers",
		partyColumn:  "sales.customer_id",
		dateColumn:   "sales.invoice_date",
	}
}

// base builds the invoice-level query both the summary and the grouped
// rows aggregate over: open balances of identified parties.
func (r *GormDueReportRepository) base(ctx context.Context, f report.Filter) (*gorm.DB, dueSide) {
	side := sideFor(f)

	q := r.db.WithContext(ctx).
		Table(side.invoiceTable).
		Joins("JOIN "+side.partyTable+" ON "+side.partyTable+".id = "+side.partyColumn).
		Where(side.invoiceTable + ".balance_amount > 0").
		Where(side.partyColumn + " IS NOT NULL")

	if f.ExcludesCancelled() {
		q = q.Where(side.invoiceTable + ".status <> 'cancelled'")
	} else {
		q = q.Where(side.invoiceTable+".status = ?", string(*f.Status))
	}
	if f.DateFrom != nil {
		q = q.Where(side.dateColumn+" >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where(side.dateColumn+" <= ?", *f.DateTo)
	}
	if id := f.CustomerID; f.PartyType == report.PartyCustomer && id != nil {
		q = q.Where(side.partyColumn+" = ?", *id)
	}
	if id := f.SupplierID; f.PartyType == report.PartySupplier && id != nil {
		q = q.Where(side.partyColumn+" = ?", *id)
	}
	if f.OverdueOnly {
		q = q.Where(side.invoiceTable + ".due_date IS NOT NULL AND " + side.invoiceTable + ".due_date < NOW()")
	}
	if f.Search != "" {
		q = q.Where("LOWER("+side.partyTable+".name) LIKE ?", searchPattern(f.Search))
	}
	return q, side
}

// Summary rolls up the whole filtered set. Each party counts once in
// TotalParties no matter how many open invoices it has; OverdueAmount
// is the sub-sum of balances already past due at now.
func (r *GormDueReportRepository) Summary(ctx context.Context, f report.Filter, now time.Time) (report.DueSummary, error) {
	q, side := r.base(ctx, f)

	type result struct {
		TotalDue      decimal.Decimal
		OverdueAmount decimal.Decimal
		TotalParties  int64
		TotalInvoices int64
	}
	var res result

	t := side.invoiceTable
	err := q.Select(
		"COALESCE(SUM("+t+".balance_amount), 0) AS total_due, "+
			"COALESCE(SUM(CASE WHEN "+t+".due_date IS NOT NULL AND "+t+".due_date < ? THEN "+t+".balance_amount ELSE 0 END), 0) AS overdue_amount, "+
			"COUNT(DISTINCT "+side.partyColumn+") AS total_parties, "+
			"COUNT(*) AS total_invoices", now).
		Scan(&res).Error
	if err != nil {
		return report.DueSummary{}, err
	}

	return report.DueSummary{
		TotalDue:      res.TotalDue,
		OverdueAmount: res.OverdueAmount,
		TotalParties:  res.TotalParties,
		TotalInvoices: res.TotalInvoices,
	}, nil
}

// Count returns the number of parties the grouped rows would yield.
func (r *GormDueReportRepository) Count(ctx context.Context, f report.Filter) (int64, error) {
	q, side := r.base(ctx, f)

	var count int64
	err := q.Select("COUNT(DISTINCT " + side.partyColumn + ")").Scan(&count).Error
	return count, err
}

// Rows fetches one sorted page of per-party due positions.
func (r *GormDueReportRepository) Rows(ctx context.Context, f report.Filter, orderBy string, page report.PageRequest, now time.Time) ([]report.DueRow, error) {
	q, side := r.base(ctx, f)

	type result struct {
		PartyID       uuid.UUID
		PartyName     string
		Phone         string
		InvoiceCount  int64
		DueAmount     decimal.Decimal
		OldestDueDate *time.Time
	}
	var results []result

	t := side.invoiceTable
	q = q.Select(side.partyColumn + " AS party_id, " +
		side.partyTable + ".name AS party_name, " +
		"COALESCE(" + side.partyTable + ".phone, '') AS phone, " +
		"COUNT(*) AS invoice_count, " +
		"COALESCE(SUM(" + t + ".balance_amount), 0) AS due_amount, " +
		"MIN(" + t + ".due_date) AS oldest_due_date").
		Group(side.partyColumn + ", " + side.partyTable + ".name, " + side.partyTable + ".phone").
		Order(orderBy)

	if !page.All {
		q = q.Offset(page.Offset()).Limit(page.PerPage)
	}

	if err := q.Scan(&results).Error; err != nil {
		return nil, err
	}

	rows := make([]report.DueRow, len(results))
	for i, row := range results {
		rows[i] = report.DueRow{
			PartyID:       row.PartyID,
			PartyName:     row.PartyName,
			Phone:         row.Phone,
			InvoiceCount:  row.InvoiceCount,
			DueAmount:     row.DueAmount,
			OldestDueDate: row.OldestDueDate,
			IsOverdue:     row.OldestDueDate != nil && row.OldestDueDate.Before(now),
		}
	}
	return rows, nil
}

var _ report.DueReportRepository = (*GormDueReportRepository)(nil)
