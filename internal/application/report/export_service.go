package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shopstack/backend/internal/domain/report"
)

// ExportService renders reports to Excel workbooks. It consumes the
// exact same filtered result the JSON endpoint produces, so the export
// always matches what the caller saw on screen.
type ExportService struct {
	reports *ReportService
}

// NewExportService creates an ExportService
func NewExportService(reports *ReportService) *ExportService {
	return &ExportService{reports: reports}
}

const salesSheet = "Sales Report"

// SalesReportExcel builds an xlsx workbook for the filtered sales
// report. The full set is exported regardless of the caller's page
// size.
func (s *ExportService) SalesReportExcel(ctx context.Context, raw report.RawFilter) (*bytes.Buffer, error) {
	raw.PerPage = "all"
	result, err := s.reports.SalesReport(ctx, raw)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(salesSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Invoice", "Customer", "Date", "Due Date", "Total", "Paid", "Due", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(salesSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range result.Rows {
		line := i + 2
		dueDate := ""
		if row.DueDate != nil {
			dueDate = row.DueDate.Format("2006-01-02")
		}
		values := []interface{}{
			row.InvoiceNumber,
			row.CustomerName,
			row.InvoiceDate.Format("2006-01-02"),
			dueDate,
			row.TotalAmount.InexactFloat64(),
			row.PaidAmount.InexactFloat64(),
			row.BalanceAmount.InexactFloat64(),
			row.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, line)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(salesSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Summary block below the rows, mirroring the JSON summary.
	base := len(result.Rows) + 3
	summaryLines := []struct {
		label string
		value interface{}
	}{
		{"Total Sales", result.Summary.TotalSales.InexactFloat64()},
		{"Total Paid", result.Summary.TotalPaid.InexactFloat64()},
		{"Total Due", result.Summary.TotalDue.InexactFloat64()},
		{"Total Discount", result.Summary.TotalDiscount.InexactFloat64()},
		{"Total Invoices", result.Summary.TotalInvoices},
	}
	for i, line := range summaryLines {
		if err := f.SetCellValue(salesSheet, fmt.Sprintf("A%d", base+i), line.label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(salesSheet, fmt.Sprintf("B%d", base+i), line.value); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
