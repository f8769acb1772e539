package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopstack/backend/internal/domain/report"
)

// Page carries the pagination state of one report response.
type Page struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int64
}

// SalesReportResult bundles one filtered view of the sales report: the
// filter-wide summary, one detail page, and the page math.
type SalesReportResult struct {
	Rows    []report.SalesRow
	Summary report.SalesSummary
	Page    Page
}

// PurchaseReportResult bundles one filtered view of the purchase report.
type PurchaseReportResult struct {
	Rows    []report.PurchaseRow
	Summary report.PurchaseSummary
	Page    Page
}

// StockReportResult bundles one filtered view of the stock report.
type StockReportResult struct {
	Rows    []report.StockRow
	Summary report.StockSummary
	Page    Page
}

// DueReportResult bundles one filtered view of the due report.
type DueReportResult struct {
	Rows    []report.DueRow
	Summary report.DueSummary
	Page    Page
}

// ReportService runs the filtered report queries. Every report follows
// the same two-step protocol: resolve the filter once, then compute the
// summary over the full filtered set and fetch the requested page from
// that same filter. The summary never derives from a page.
type ReportService struct {
	sales     report.SalesReportRepository
	purchases report.PurchaseReportRepository
	stock     report.StockReportRepository
	due       report.DueReportRepository

	now func() time.Time
}

// NewReportService creates a ReportService
func NewReportService(
	sales report.SalesReportRepository,
	purchases report.PurchaseReportRepository,
	stock report.StockReportRepository,
	due report.DueReportRepository,
) *ReportService {
	return &ReportService{
		sales:     sales,
		purchases: purchases,
		stock:     stock,
		due:       due,
		now:       time.Now,
	}
}

func buildPage(page report.PageRequest, total int64, rowCount int) Page {
	if page.All {
		per := rowCount
		if per < 1 {
			per = 1
		}
		return Page{CurrentPage: 1, LastPage: 1, PerPage: per, Total: total}
	}
	return Page{
		CurrentPage: page.Page,
		LastPage:    report.LastPage(total, page.PerPage),
		PerPage:     page.PerPage,
		Total:       total,
	}
}

// SalesReport returns the sales report for raw request parameters. The
// summary, row count and detail page are independent read-only queries
// and run concurrently; the first failure fails the whole request.
func (s *ReportService) SalesReport(ctx context.Context, raw report.RawFilter) (*SalesReportResult, error) {
	filter, err := report.ResolveFilter(raw)
	if err != nil {
		return nil, err
	}
	page := report.ParsePageRequest(raw.Page, raw.PerPage)
	orderBy := report.SalesSortFields.Resolve(raw.SortBy, raw.SortDir)

	var result SalesReportResult
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.sales.Summary(gctx, filter)
		if err != nil {
			return err
		}
		result.Summary = summary
		return nil
	})
	g.Go(func() error {
		count, err := s.sales.Count(gctx, filter)
		if err != nil {
			return err
		}
		total = count
		return nil
	})
	g.Go(func() error {
		rows, err := s.sales.Rows(gctx, filter, orderBy, page)
		if err != nil {
			return err
		}
		result.Rows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Page = buildPage(page, total, len(result.Rows))
	return &result, nil
}

// PurchaseReport returns the purchase report for raw request parameters.
func (s *ReportService) PurchaseReport(ctx context.Context, raw report.RawFilter) (*PurchaseReportResult, error) {
	filter, err := report.ResolveFilter(raw)
	if err != nil {
		return nil, err
	}
	page := report.ParsePageRequest(raw.Page, raw.PerPage)
	orderBy := report.PurchaseSortFields.Resolve(raw.SortBy, raw.SortDir)

	var result PurchaseReportResult
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.purchases.Summary(gctx, filter)
		if err != nil {
			return err
		}
		result.Summary = summary
		return nil
	})
	g.Go(func() error {
		count, err := s.purchases.Count(gctx, filter)
		if err != nil {
			return err
		}
		total = count
		return nil
	})
	g.Go(func() error {
		rows, err := s.purchases.Rows(gctx, filter, orderBy, page)
		if err != nil {
			return err
		}
		result.Rows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Page = buildPage(page, total, len(result.Rows))
	return &result, nil
}

// StockReport returns the stock report for raw request parameters.
func (s *ReportService) StockReport(ctx context.Context, raw report.RawFilter) (*StockReportResult, error) {
	filter, err := report.ResolveFilter(raw)
	if err != nil {
		return nil, err
	}
	page := report.ParsePageRequest(raw.Page, raw.PerPage)
	orderBy := report.StockSortFields.Resolve(raw.SortBy, raw.SortDir)

	var result StockReportResult
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.stock.Summary(gctx, filter)
		if err != nil {
			return err
		}
		result.Summary = summary
		return nil
	})
	g.Go(func() error {
		count, err := s.stock.Count(gctx, filter)
		if err != nil {
			return err
		}
		total = count
		return nil
	})
	g.Go(func() error {
		rows, err := s.stock.Rows(gctx, filter, orderBy, page)
		if err != nil {
			return err
		}
		result.Rows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Page = buildPage(page, total, len(result.Rows))
	return &result, nil
}

// DueReport returns the due report for raw request parameters. Rows are
// per-party positions; pagination windows over parties.
func (s *ReportService) DueReport(ctx context.Context, raw report.RawFilter) (*DueReportResult, error) {
	filter, err := report.ResolveFilter(raw)
	if err != nil {
		return nil, err
	}
	page := report.ParsePageRequest(raw.Page, raw.PerPage)
	orderBy := report.DueSortFields.Resolve(raw.SortBy, raw.SortDir)
	now := s.now()

	var result DueReportResult
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.due.Summary(gctx, filter, now)
		if err != nil {
			return err
		}
		result.Summary = summary
		return nil
	})
	g.Go(func() error {
		count, err := s.due.Count(gctx, filter)
		if err != nil {
			return err
		}
		total = count
		return nil
	})
	g.Go(func() error {
		rows, err := s.due.Rows(gctx, filter, orderBy, page, now)
		if err != nil {
			return err
		}
		result.Rows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Page = buildPage(page, total, len(result.Rows))
	return &result, nil
}

// TopProducts exposes the sales report's top-seller breakdown for the
// Excel export and handlers needing it alongside the report.
func (s *ReportService) TopProducts(ctx context.Context, raw report.RawFilter, limit int) ([]report.TopProduct, error) {
	filter, err := report.ResolveFilter(raw)
	if err != nil {
		return nil, err
	}
	return s.sales.TopProducts(ctx, filter, limit)
}
