package persistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
)

// Filter scopes shared by the summary and detail queries of each
// report. Both paths MUST go through the same scope so the aggregate
// rollup and the paged rows always see identical predicates.

func applySalesFilter(q *gorm.DB, f report.Filter) *gorm.DB {
	if f.DateFrom != nil {
		q = q.Where("sales.invoice_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("sales.invoice_date <= ?", *f.DateTo)
	}
	if f.Status != nil {
		q = q.Where("sales.status = ?", string(*f.Status))
	}
	if f.CustomerID != nil {
		q = q.Where("sales.customer_id = ?", *f.CustomerID)
	}
	if f.WarehouseID != nil {
		q = q.Where("sales.warehouse_id = ?", *f.WarehouseID)
	}
	if f.OverdueOnly {
		q = q.Where("sales.due_date IS NOT NULL AND sales.due_date < NOW()")
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		q = q.Where("LOWER(sales.invoice_number) LIKE ? OR LOWER(customers.name) LIKE ?", pattern, pattern)
	}
	return q
}

func applyPurchaseFilter(q *gorm.DB, f report.Filter) *gorm.DB {
	if f.DateFrom != nil {
		q = q.Where("purchases.invoice_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("purchases.invoice_date <= ?", *f.DateTo)
	}
	if f.Status != nil {
		q = q.Where("purchases.status = ?", string(*f.Status))
	}
	if f.SupplierID != nil {
		q = q.Where("purchases.supplier_id = ?", *f.SupplierID)
	}
	if f.WarehouseID != nil {
		q = q.Where("purchases.warehouse_id = ?", *f.WarehouseID)
	}
	if f.OverdueOnly {
		q = q.Where("purchases.due_date IS NOT NULL AND purchases.due_date < NOW()")
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		q = q.Where("LOWER(purchases.invoice_number) LIKE ? OR LOWER(suppliers.name) LIKE ?", pattern, pattern)
	}
	return q
}

// lowStockCondition matches the stock report's low_stock_only filter.
// The dashboard alert uses a strict comparison instead; the two
// boundaries are intentionally different.
const (
	lowStockCondition       = "products.minimum_stock_level > 0 AND stocks.quantity <= products.minimum_stock_level"
	lowStockAlertCondition  = "products.minimum_stock_level > 0 AND stocks.quantity < products.minimum_stock_level"
	outOfStockCondition     = "stocks.quantity <= 0"
	stockStatusSelectColumn = "CASE WHEN stocks.quantity <= 0 THEN 'out_of_stock' " +
		"WHEN products.minimum_stock_level > 0 AND stocks.quantity <= products.minimum_stock_level THEN 'low_stock' " +
		"ELSE 'in_stock' END AS stock_status"
)

func applyStockFilter(q *gorm.DB, f report.Filter) *gorm.DB {
	if f.WarehouseID != nil {
		q = q.Where("stocks.warehouse_id = ?", *f.WarehouseID)
	}
	if f.CategoryID != nil {
		q = q.Where("products.category_id = ?", *f.CategoryID)
	}
	if f.LowStockOnly {
		q = q.Where(lowStockCondition)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		q = q.Where("LOWER(products.name) LIKE ? OR LOWER(products.sku) LIKE ?", pattern, pattern)
	}
	return q
}

func searchPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// moneySum builds the monetary SUM expression for a report summary.
// With the cancelled-exclusion policy active, cancelled rows still
// count toward record counts but contribute zero to every sum.
func moneySum(table, column string, excludeCancelled bool) string {
	if excludeCancelled {
		return fmt.Sprintf(
			"COALESCE(SUM(CASE WHEN %s.status <> 'cancelled' THEN %s.%s ELSE 0 END), 0)",
			table, table, column)
	}
	return fmt.Sprintf("COALESCE(SUM(%s.%s), 0)", table, column)
}
