package report

import "strings"

// SortFieldMap is a per-report allow-list from logical sort keys to
// physical SQL expressions. Unknown keys and directions fall back to
// the report's defaults instead of erroring.
type SortFieldMap struct {
	fields     map[string]string
	defaultKey string
	defaultDir string
}

// NewSortFieldMap builds a map; defaultKey must be present in fields.
func NewSortFieldMap(fields map[string]string, defaultKey, defaultDir string) SortFieldMap {
	return SortFieldMap{
		fields:     fields,
		defaultKey: defaultKey,
		defaultDir: normalizeDirection(defaultDir, "DESC"),
	}
}

// Resolve maps a logical key and direction to an ORDER BY fragment.
func (m SortFieldMap) Resolve(key, dir string) string {
	expr, ok := m.fields[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		expr = m.fields[m.defaultKey]
	}
	return expr + " " + normalizeDirection(dir, m.defaultDir)
}

func normalizeDirection(dir, fallback string) string {
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	}
	return fallback
}

// Sort maps for each report. Expressions reference the joined query
// each repository builds; computed fields (stock value, stock status)
// sort on expressions rather than stored columns.
var (
	SalesSortFields = NewSortFieldMap(map[string]string{
		"date":           "sales.invoice_date",
		"invoice_number": "sales.invoice_number",
		"customer":       "customers.name",
		"total":          "sales.total_amount",
		"paid":           "sales.paid_amount",
		"due":            "sales.balance_amount",
		"status":         salesStatusOrder,
	}, "date", "DESC")

	PurchaseSortFields = NewSortFieldMap(map[string]string{
		"date":           "purchases.invoice_date",
		"invoice_number": "purchases.invoice_number",
		"supplier":       "suppliers.name",
		"total":          "purchases.total_amount",
		"paid":           "purchases.paid_amount",
		"due":            "purchases.balance_amount",
		"status":         purchaseStatusOrder,
	}, "date", "DESC")

	StockSortFields = NewSortFieldMap(map[string]string{
		"product":     "products.name",
		"sku":         "products.sku",
		"category":    "categories.name",
		"warehouse":   "warehouses.name",
		"quantity":    "stocks.quantity",
		"stock_value": "(stocks.quantity * products.purchase_price)",
		"status":      stockStatusOrder,
	}, "product", "ASC")

	DueSortFields = NewSortFieldMap(map[string]string{
		"party":    "party_name",
		"due":      "due_amount",
		"invoices": "invoice_count",
		"due_date": "oldest_due_date",
	}, "due", "DESC")
)

const (
	salesStatusOrder = "CASE sales.status WHEN 'pending' THEN 0 WHEN 'partial' THEN 1 " +
		"WHEN 'paid' THEN 2 WHEN 'draft' THEN 3 ELSE 4 END"
	purchaseStatusOrder = "CASE purchases.status WHEN 'pending' THEN 0 WHEN 'partial' THEN 1 " +
		"WHEN 'paid' THEN 2 WHEN 'draft' THEN 3 ELSE 4 END"
	stockStatusOrder = "CASE WHEN stocks.quantity <= 0 THEN 0 " +
		"WHEN products.minimum_stock_level > 0 AND stocks.quantity <= products.minimum_stock_level THEN 1 ELSE 2 END"
)
