package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesSummary is the filter-wide rollup of the sales report. Sums
// follow the cancelled-exclusion policy; TotalInvoices counts every
// matching row regardless of status.
type SalesSummary struct {
	TotalSales    decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalDue      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalInvoices int64
}

// PurchaseSummary mirrors SalesSummary for the purchase side.
type PurchaseSummary struct {
	TotalPurchases decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalDue       decimal.Decimal
	TotalDiscount  decimal.Decimal
	TotalInvoices  int64
}

// StockSummary is the rollup of the stock report.
type StockSummary struct {
	TotalItems      int64
	TotalQuantity   decimal.Decimal
	TotalStockValue decimal.Decimal
	LowStockCount   int64
	OutOfStockCount int64
}

// DueSummary is the rollup of the due report. TotalParties counts each
// party once regardless of how many open invoices it has; OverdueAmount
// is the sub-sum of balances already past their due date.
type DueSummary struct {
	TotalDue      decimal.Decimal
	OverdueAmount decimal.Decimal
	TotalParties  int64
	TotalInvoices int64
}

// SalesRow is one detail line of the sales report.
type SalesRow struct {
	ID            uuid.UUID
	InvoiceNumber string
	CustomerName  string
	InvoiceDate   time.Time
	DueDate       *time.Time
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal
	Status        string
}

// PurchaseRow is one detail line of the purchase report.
type PurchaseRow struct {
	ID            uuid.UUID
	InvoiceNumber string
	SupplierName  string
	InvoiceDate   time.Time
	DueDate       *time.Time
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal
	Status        string
}

// StockRow is one detail line of the stock report. StockValue and
// StockStatus are computed, not stored.
type StockRow struct {
	ProductID         uuid.UUID
	ProductName       string
	SKU               string
	CategoryName      string
	WarehouseName     string
	Quantity          decimal.Decimal
	MinimumStockLevel decimal.Decimal
	PurchasePrice     decimal.Decimal
	StockValue        decimal.Decimal
	StockStatus       string
}

// DueRow is one party's aggregated outstanding position.
type DueRow struct {
	PartyID       uuid.UUID
	PartyName     string
	Phone         string
	InvoiceCount  int64
	DueAmount     decimal.Decimal
	OldestDueDate *time.Time
	IsOverdue     bool
}

// TopProduct is a best-seller entry for the dashboard.
type TopProduct struct {
	ProductID    uuid.UUID
	Name         string
	QuantitySold decimal.Decimal
	Revenue      decimal.Decimal
}

// TopCustomer is a highest-revenue customer entry for the dashboard.
type TopCustomer struct {
	CustomerID   uuid.UUID
	Name         string
	InvoiceCount int64
	Total        decimal.Decimal
}

// LowStockItem is a replenishment alert entry. Needed is how much stock
// is missing to reach the minimum level, never negative.
type LowStockItem struct {
	ProductID         uuid.UUID
	Name              string
	SKU               string
	WarehouseName     string
	Quantity          decimal.Decimal
	MinimumStockLevel decimal.Decimal
	Needed            decimal.Decimal
}

// GrowthRate returns the percentage change from previous to current,
// zero when there is no baseline to compare against.
func GrowthRate(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}
