package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shopstack/backend/internal/domain/report"
)

// DashboardMetrics is the scalar block of the dashboard.
type DashboardMetrics struct {
	TodaySales      decimal.Decimal
	YesterdaySales  decimal.Decimal
	MonthSales      decimal.Decimal
	LastMonthSales  decimal.Decimal
	SalesGrowth     decimal.Decimal
	MonthGrowth     decimal.Decimal
	TodayPurchases  decimal.Decimal
	MonthPurchases  decimal.Decimal
	CustomerDue     decimal.Decimal
	SupplierDue     decimal.Decimal
	MonthProfit     decimal.Decimal
	TotalProducts   int64
	LowStockCount   int64
	ActiveCustomers int64
	ActiveSuppliers int64
}

// Dashboard is the full dashboard payload.
type Dashboard struct {
	Metrics       DashboardMetrics
	SalesTrend7   []report.TrendPoint
	SalesTrend4W  []report.TrendPoint
	TopProducts   []report.TopProduct
	TopCustomers  []report.TopCustomer
	LowStockItems []report.LowStockItem
	RecentSales   []report.SalesRow
}

// DashboardService assembles the dashboard. Every block is an
// independent read-only query over the same snapshot, so they fan out
// concurrently; the first error cancels the rest and fails the whole
// request rather than returning a partially filled dashboard.
type DashboardService struct {
	repo report.DashboardRepository
	now  func() time.Time
}

// NewDashboardService creates a DashboardService
func NewDashboardService(repo report.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Build computes the full dashboard.
func (s *DashboardService) Build(ctx context.Context) (*Dashboard, error) {
	now := s.now()

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	monthStart := startOfMonth(now)
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	lastMonthEnd := monthStart.Add(-time.Nanosecond)
	weekWindowStart := startOfDay(now.AddDate(0, 0, -27))

	var d Dashboard
	var trendRows []report.DatedAmount
	var profitItems []report.ProfitItem

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := s.repo.SalesTotalBetween(gctx, today, endOfDay(now))
		d.Metrics.TodaySales = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.SalesTotalBetween(gctx, yesterday, endOfDay(yesterday))
		d.Metrics.YesterdaySales = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.SalesTotalBetween(gctx, monthStart, endOfDay(now))
		d.Metrics.MonthSales = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.SalesTotalBetween(gctx, lastMonthStart, lastMonthEnd)
		d.Metrics.LastMonthSales = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.PurchaseTotalBetween(gctx, today, endOfDay(now))
		d.Metrics.TodayPurchases = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.PurchaseTotalBetween(gctx, monthStart, endOfDay(now))
		d.Metrics.MonthPurchases = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.CustomerDueTotal(gctx)
		d.Metrics.CustomerDue = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.SupplierDueTotal(gctx)
		d.Metrics.SupplierDue = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.ProductCount(gctx)
		d.Metrics.TotalProducts = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.LowStockCount(gctx)
		d.Metrics.LowStockCount = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.ActiveCustomerCount(gctx)
		d.Metrics.ActiveCustomers = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.ActiveSupplierCount(gctx)
		d.Metrics.ActiveSuppliers = v
		return err
	})
	g.Go(func() error {
		rows, err := s.repo.SalesAmountsBetween(gctx, weekWindowStart, endOfDay(now))
		trendRows = rows
		return err
	})
	g.Go(func() error {
		items, err := s.repo.ProfitItemsBetween(gctx, monthStart, endOfDay(now))
		profitItems = items
		return err
	})
	g.Go(func() error {
		top, err := s.repo.TopProducts(gctx, monthStart, endOfDay(now), 5)
		d.TopProducts = top
		return err
	})
	g.Go(func() error {
		top, err := s.repo.TopCustomers(gctx, monthStart, endOfDay(now), 5)
		d.TopCustomers = top
		return err
	})
	g.Go(func() error {
		items, err := s.repo.LowStockItems(gctx, 10)
		d.LowStockItems = items
		return err
	})
	g.Go(func() error {
		rows, err := s.repo.RecentSales(gctx, 10)
		d.RecentSales = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.Metrics.SalesGrowth = report.GrowthRate(d.Metrics.TodaySales, d.Metrics.YesterdaySales)
	d.Metrics.MonthGrowth = report.GrowthRate(d.Metrics.MonthSales, d.Metrics.LastMonthSales)

	profitRows := report.GroupProfit(profitItems, report.GroupByMonthly)
	d.Metrics.MonthProfit = report.SummarizeProfit(profitRows).GrossProfit

	d.SalesTrend7 = report.DailyTrend(trendRows, now)
	d.SalesTrend4W = report.WeeklyTrend(trendRows, now)

	return &d, nil
}
