package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shopstack/backend/internal/domain/report"
)

// exportSalesRepo serves a fixed summary so every summary column,
// discount included, can be asserted in the workbook.
type exportSalesRepo struct {
	rows    []report.SalesRow
	summary report.SalesSummary
}

func (f *exportSalesRepo) Summary(context.Context, report.Filter) (report.SalesSummary, error) {
	return f.summary, nil
}

func (f *exportSalesRepo) Count(context.Context, report.Filter) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *exportSalesRepo) Rows(context.Context, report.Filter, string, report.PageRequest) ([]report.SalesRow, error) {
	return f.rows, nil
}

func (f *exportSalesRepo) TopProducts(context.Context, report.Filter, int) ([]report.TopProduct, error) {
	return nil, nil
}

func TestExportService_SalesWorkbookMatchesSummary(t *testing.T) {
	repo := &exportSalesRepo{
		rows: []report.SalesRow{{
			ID:            uuid.New(),
			InvoiceNumber: "INV-000001",
			CustomerName:  "Acme",
			InvoiceDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			TotalAmount:   decimal.NewFromInt(115),
			PaidAmount:    decimal.NewFromInt(50),
			BalanceAmount: decimal.NewFromInt(65),
			Status:        "partial",
		}},
		summary: report.SalesSummary{
			TotalSales:    decimal.NewFromInt(115),
			TotalPaid:     decimal.NewFromInt(50),
			TotalDue:      decimal.NewFromInt(65),
			TotalDiscount: decimal.NewFromInt(10),
			TotalInvoices: 1,
		},
	}
	svc := NewExportService(NewReportService(repo, nil, nil, nil))

	buf, err := svc.SalesReportExcel(context.Background(), report.RawFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	invoice, err := f.GetCellValue("Sales Report", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", invoice)

	// summary block starts two rows under the data, one label per line
	labels := make(map[string]string)
	for row := 4; row <= 8; row++ {
		label, err := f.GetCellValue("Sales Report", fmt.Sprintf("A%d", row))
		require.NoError(t, err)
		value, err := f.GetCellValue("Sales Report", fmt.Sprintf("B%d", row))
		require.NoError(t, err)
		labels[label] = value
	}

	assert.Equal(t, "115", labels["Total Sales"])
	assert.Equal(t, "50", labels["Total Paid"])
	assert.Equal(t, "65", labels["Total Due"])
	assert.Equal(t, "10", labels["Total Discount"])
	assert.Equal(t, "1", labels["Total Invoices"])
}
