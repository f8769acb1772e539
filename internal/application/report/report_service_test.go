package report

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/shared"
)

// fakeSalesRepo serves a fixed invoice set, slicing pages the way the
// real repository does, so summary/page consistency can be asserted
// end to end.
type fakeSalesRepo struct {
	rows       []report.SalesRow
	summaryErr error
	rowsErr    error
}

func (f *fakeSalesRepo) visible(fl report.Filter) []report.SalesRow {
	var out []report.SalesRow
	for _, r := range f.rows {
		if fl.Status != nil && r.Status != string(*fl.Status) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (f *fakeSalesRepo) Summary(_ context.Context, fl report.Filter) (report.SalesSummary, error) {
	if f.summaryErr != nil {
		return report.SalesSummary{}, f.summaryErr
	}
	var s report.SalesSummary
	for _, r := range f.visible(fl) {
		s.TotalInvoices++
		if fl.ExcludesCancelled() && r.Status == "cancelled" {
			continue
		}
		s.TotalSales = s.TotalSales.Add(r.TotalAmount)
		s.TotalPaid = s.TotalPaid.Add(r.PaidAmount)
		s.TotalDue = s.TotalDue.Add(r.BalanceAmount)
	}
	return s, nil
}

func (f *fakeSalesRepo) Count(_ context.Context, fl report.Filter) (int64, error) {
	return int64(len(f.visible(fl))), nil
}

func (f *fakeSalesRepo) Rows(_ context.Context, fl report.Filter, _ string, page report.PageRequest) ([]report.SalesRow, error) {
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	rows := f.visible(fl)
	if page.All {
		return rows, nil
	}
	start := page.Offset()
	if start >= len(rows) {
		return nil, nil
	}
	end := start + page.PerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], nil
}

func (f *fakeSalesRepo) TopProducts(context.Context, report.Filter, int) ([]report.TopProduct, error) {
	return nil, nil
}

func salesRow(amount int64, status string) report.SalesRow {
	return report.SalesRow{
		ID:            uuid.New(),
		InvoiceNumber: "INV",
		InvoiceDate:   time.Now(),
		TotalAmount:   decimal.NewFromInt(amount),
		BalanceAmount: decimal.NewFromInt(amount),
		Status:        status,
	}
}

func newSalesService(repo *fakeSalesRepo) *ReportService {
	return NewReportService(repo, nil, nil, nil)
}

func TestSalesReport_SummaryIndependentOfPaging(t *testing.T) {
	repo := &fakeSalesRepo{}
	for i := 0; i < 25; i++ {
		repo.rows = append(repo.rows, salesRow(10, "paid"))
	}
	svc := newSalesService(repo)

	// Whatever page is requested, the summary covers the full set and
	// the page totals add up to it.
	pageTotal := decimal.Zero
	var firstSummary decimal.Decimal
	for page := 1; page <= 3; page++ {
		res, err := svc.SalesReport(context.Background(), report.RawFilter{
			Page: strconv.Itoa(page), PerPage: "10",
		})
		require.NoError(t, err)

		if page == 1 {
			firstSummary = res.Summary.TotalSales
			assert.Equal(t, 3, res.Page.LastPage)
			assert.Equal(t, int64(25), res.Page.Total)
		}
		assert.True(t, res.Summary.TotalSales.Equal(firstSummary))
		for _, r := range res.Rows {
			pageTotal = pageTotal.Add(r.TotalAmount)
		}
	}
	assert.True(t, pageTotal.Equal(firstSummary), "pages sum to %s, summary %s", pageTotal, firstSummary)
}

func TestSalesReport_CancelledExclusion(t *testing.T) {
	repo := &fakeSalesRepo{rows: []report.SalesRow{
		salesRow(100, "paid"),
		salesRow(50, "cancelled"),
	}}
	svc := newSalesService(repo)

	res, err := svc.SalesReport(context.Background(), report.RawFilter{})
	require.NoError(t, err)
	assert.True(t, res.Summary.TotalSales.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(2), res.Summary.TotalInvoices)

	res, err = svc.SalesReport(context.Background(), report.RawFilter{Status: "cancelled"})
	require.NoError(t, err)
	assert.True(t, res.Summary.TotalSales.Equal(decimal.NewFromInt(50)))
}

func TestSalesReport_AllSentinel(t *testing.T) {
	repo := &fakeSalesRepo{}
	for i := 0; i < 37; i++ {
		repo.rows = append(repo.rows, salesRow(1, "paid"))
	}
	svc := newSalesService(repo)

	res, err := svc.SalesReport(context.Background(), report.RawFilter{PerPage: "all"})
	require.NoError(t, err)

	assert.Len(t, res.Rows, 37)
	assert.Equal(t, 1, res.Page.LastPage)
	assert.Equal(t, 1, res.Page.CurrentPage)
	assert.Equal(t, int64(37), res.Page.Total)
}

func TestSalesReport_InvalidFilterRejected(t *testing.T) {
	svc := newSalesService(&fakeSalesRepo{})

	_, err := svc.SalesReport(context.Background(), report.RawFilter{
		DateFrom: "2024-05-01", DateTo: "2024-04-01",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestSalesReport_QueryFailureFailsRequest(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newSalesService(&fakeSalesRepo{summaryErr: boom})

	_, err := svc.SalesReport(context.Background(), report.RawFilter{})
	require.ErrorIs(t, err, boom)
}

func TestSalesReport_EmptySetYieldsZeros(t *testing.T) {
	svc := newSalesService(&fakeSalesRepo{})

	res, err := svc.SalesReport(context.Background(), report.RawFilter{})
	require.NoError(t, err)

	assert.True(t, res.Summary.TotalSales.IsZero())
	assert.Zero(t, res.Summary.TotalInvoices)
	assert.Equal(t, 1, res.Page.LastPage)
	assert.Empty(t, res.Rows)
}
