package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/backend/internal/domain/report"
)

type fakeDashboardRepo struct {
	salesByWindow map[string]decimal.Decimal
	trendRows     []report.DatedAmount
	profitItems   []report.ProfitItem
	lowStockErr   error
}

func windowKey(from, to time.Time) string {
	return from.Format("2006-01-02") + "/" + to.Format("2006-01-02")
}

func (f *fakeDashboardRepo) SalesTotalBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	if v, ok := f.salesByWindow[windowKey(from, to)]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (f *fakeDashboardRepo) PurchaseTotalBetween(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeDashboardRepo) CustomerDueTotal(context.Context) (decimal.Decimal, error) {
	return decimal.NewFromInt(40), nil
}

func (f *fakeDashboardRepo) SupplierDueTotal(context.Context) (decimal.Decimal, error) {
	return decimal.NewFromInt(15), nil
}

func (f *fakeDashboardRepo) ProductCount(context.Context) (int64, error) { return 12, nil }

func (f *fakeDashboardRepo) LowStockCount(context.Context) (int64, error) {
	if f.lowStockErr != nil {
		return 0, f.lowStockErr
	}
	return 3, nil
}

func (f *fakeDashboardRepo) ActiveCustomerCount(context.Context) (int64, error) { return 7, nil }
func (f *fakeDashboardRepo) ActiveSupplierCount(context.Context) (int64, error) { return 4, nil }

func (f *fakeDashboardRepo) SalesAmountsBetween(context.Context, time.Time, time.Time) ([]report.DatedAmount, error) {
	return f.trendRows, nil
}

func (f *fakeDashboardRepo) ProfitItemsBetween(context.Context, time.Time, time.Time) ([]report.ProfitItem, error) {
	return f.profitItems, nil
}

func (f *fakeDashboardRepo) TopProducts(context.Context, time.Time, time.Time, int) ([]report.TopProduct, error) {
	return []report.TopProduct{{Name: "Widget"}}, nil
}

func (f *fakeDashboardRepo) TopCustomers(context.Context, time.Time, time.Time, int) ([]report.TopCustomer, error) {
	return nil, nil
}

func (f *fakeDashboardRepo) LowStockItems(context.Context, int) ([]report.LowStockItem, error) {
	return nil, nil
}

func (f *fakeDashboardRepo) RecentSales(context.Context, int) ([]report.SalesRow, error) {
	return nil, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
}

func TestDashboard_GrowthAndTrends(t *testing.T) {
	now := fixedNow()
	repo := &fakeDashboardRepo{
		salesByWindow: map[string]decimal.Decimal{
			windowKey(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), now): decimal.NewFromInt(150),
			windowKey(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)): decimal.NewFromInt(100),
			windowKey(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), now): decimal.NewFromInt(900),
			windowKey(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)): decimal.NewFromInt(600),
		},
		trendRows: []report.DatedAmount{
			{Date: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(150)},
			{Date: time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(80)},
		},
	}

	svc := NewDashboardService(repo)
	svc.now = fixedNow

	d, err := svc.Build(context.Background())
	require.NoError(t, err)

	// 150 vs 100 yesterday is +50%.
	assert.True(t, d.Metrics.SalesGrowth.Equal(decimal.NewFromInt(50)),
		"sales growth %s", d.Metrics.SalesGrowth)
	assert.True(t, d.Metrics.MonthGrowth.Equal(decimal.NewFromInt(50)))

	require.Len(t, d.SalesTrend7, 7)
	assert.Equal(t, "Jun 09", d.SalesTrend7[0].Label)
	assert.Equal(t, "Jun 15", d.SalesTrend7[6].Label)
	assert.True(t, d.SalesTrend7[6].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, d.SalesTrend7[5].Amount.IsZero())
	assert.True(t, d.SalesTrend7[4].Amount.Equal(decimal.NewFromInt(80)))

	require.Len(t, d.SalesTrend4W, 4)

	assert.Equal(t, int64(12), d.Metrics.TotalProducts)
	assert.Equal(t, int64(3), d.Metrics.LowStockCount)
	require.Len(t, d.TopProducts, 1)
	assert.Equal(t, "Widget", d.TopProducts[0].Name)
}

func TestDashboard_ZeroBaselineGrowth(t *testing.T) {
	now := fixedNow()
	repo := &fakeDashboardRepo{
		salesByWindow: map[string]decimal.Decimal{
			// Today sold, yesterday did not. Growth stays zero instead
			// of dividing by zero.
			windowKey(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), now): decimal.NewFromInt(500),
		},
	}

	svc := NewDashboardService(repo)
	svc.now = fixedNow

	d, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.True(t, d.Metrics.TodaySales.Equal(decimal.NewFromInt(500)))
	assert.True(t, d.Metrics.SalesGrowth.IsZero())
}

func TestDashboard_MonthProfit(t *testing.T) {
	repo := &fakeDashboardRepo{
		profitItems: []report.ProfitItem{
			{
				ProductName:   "Widget",
				Date:          time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
				Quantity:      decimal.NewFromInt(2),
				Total:         decimal.NewFromInt(120),
				Discount:      decimal.NewFromInt(10),
				PurchasePrice: decimal.NewFromInt(40),
			},
		},
	}

	svc := NewDashboardService(repo)
	svc.now = fixedNow

	d, err := svc.Build(context.Background())
	require.NoError(t, err)

	// 120 revenue - 80 cost - 10 discount.
	assert.True(t, d.Metrics.MonthProfit.Equal(decimal.NewFromInt(30)),
		"month profit %s", d.Metrics.MonthProfit)
}

func TestDashboard_FirstErrorFailsBuild(t *testing.T) {
	boom := errors.New("timeout")
	repo := &fakeDashboardRepo{lowStockErr: boom}

	svc := NewDashboardService(repo)
	svc.now = fixedNow

	_, err := svc.Build(context.Background())
	require.ErrorIs(t, err, boom)
}
