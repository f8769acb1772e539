package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRepository answers the sales report's aggregate and detail
// queries. Summary and Count evaluate the whole filtered set; Rows
// returns one sorted page of it. orderBy is a resolved sort fragment
// from SalesSortFields, never raw user input.
type SalesReportRepository interface {
	Summary(ctx context.Context, f Filter) (SalesSummary, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Rows(ctx context.Context, f Filter, orderBy string, page PageRequest) ([]SalesRow, error)
	TopProducts(ctx context.Context, f Filter, limit int) ([]TopProduct, error)
}

// PurchaseReportRepository mirrors SalesReportRepository for purchases.
type PurchaseReportRepository interface {
	Summary(ctx context.Context, f Filter) (PurchaseSummary, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Rows(ctx context.Context, f Filter, orderBy string, page PageRequest) ([]PurchaseRow, error)
}

// StockReportRepository answers the stock report over the product and
// warehouse joined stock rows.
type StockReportRepository interface {
	Summary(ctx context.Context, f Filter) (StockSummary, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Rows(ctx context.Context, f Filter, orderBy string, page PageRequest) ([]StockRow, error)
}

// DueReportRepository answers the due report. Rows are grouped per
// party; pagination windows over parties, not invoices.
type DueReportRepository interface {
	Summary(ctx context.Context, f Filter, now time.Time) (DueSummary, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Rows(ctx context.Context, f Filter, orderBy string, page PageRequest, now time.Time) ([]DueRow, error)
}

// ProfitReportRepository fetches the sale lines feeding GroupProfit,
// already restricted to non-cancelled sales.
type ProfitReportRepository interface {
	Items(ctx context.Context, f Filter) ([]ProfitItem, error)
}

// DashboardRepository answers the point queries of the dashboard. All
// monetary totals exclude cancelled invoices.
type DashboardRepository interface {
	SalesTotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	PurchaseTotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CustomerDueTotal(ctx context.Context) (decimal.Decimal, error)
	SupplierDueTotal(ctx context.Context) (decimal.Decimal, error)
	ProductCount(ctx context.Context) (int64, error)
	LowStockCount(ctx context.Context) (int64, error)
	ActiveCustomerCount(ctx context.Context) (int64, error)
	ActiveSupplierCount(ctx context.Context) (int64, error)
	SalesAmountsBetween(ctx context.Context, from, to time.Time) ([]DatedAmount, error)
	ProfitItemsBetween(ctx context.Context, from, to time.Time) ([]ProfitItem, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
	TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]TopCustomer, error)
	LowStockItems(ctx context.Context, limit int) ([]LowStockItem, error)
	RecentSales(ctx context.Context, limit int) ([]SalesRow, error)
}
