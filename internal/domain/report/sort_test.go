package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortFieldMap_Resolve(t *testing.T) {
	tests := []struct {
		name string
		m    SortFieldMap
		key  string
		dir  string
		want string
	}{
		{"known key and dir", SalesSortFields, "total", "asc", "sales.total_amount ASC"},
		{"direction normalized", SalesSortFields, "total", "DeSc", "sales.total_amount DESC"},
		{"unknown key falls back", SalesSortFields, "unknown_field", "asc", "sales.invoice_date ASC"},
		{"unknown dir falls back", SalesSortFields, "paid", "sideways", "sales.paid_amount DESC"},
		{"empty input is default", SalesSortFields, "", "", "sales.invoice_date DESC"},
		{"stock default is ascending", StockSortFields, "", "", "products.name ASC"},
		{"computed stock value", StockSortFields, "stock_value", "desc", "(stocks.quantity * products.purchase_price) DESC"},
		{"due default", DueSortFields, "nope", "", "due_amount DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Resolve(tt.key, tt.dir))
		})
	}
}

func TestSortFieldMap_StatusExpression(t *testing.T) {
	got := StockSortFields.Resolve("status", "asc")
	assert.Contains(t, got, "CASE WHEN stocks.quantity <= 0 THEN 0")
	assert.Contains(t, got, "ASC")
}
