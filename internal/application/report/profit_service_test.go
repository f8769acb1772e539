package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/backend/internal/domain/report"
)

type fakeProfitRepo struct {
	items []report.ProfitItem
}

func (f *fakeProfitRepo) Items(context.Context, report.Filter) ([]report.ProfitItem, error) {
	return f.items, nil
}

func TestProfitReport_DefaultsToDaily(t *testing.T) {
	repo := &fakeProfitRepo{items: []report.ProfitItem{
		{
			ProductID:     uuid.New(),
			ProductName:   "Widget",
			Date:          time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Quantity:      decimal.NewFromInt(2),
			Total:         decimal.NewFromInt(120),
			Discount:      decimal.NewFromInt(10),
			PurchasePrice: decimal.NewFromInt(40),
		},
		{
			ProductID:     uuid.New(),
			ProductName:   "Gadget",
			Date:          time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			Quantity:      decimal.NewFromInt(1),
			Total:         decimal.NewFromInt(50),
			PurchasePrice: decimal.NewFromInt(20),
		},
	}}
	svc := NewProfitService(repo)

	res, err := svc.ProfitReport(context.Background(), report.RawFilter{})
	require.NoError(t, err)

	assert.Equal(t, report.GroupByDaily, res.GroupBy)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "2024-06-03", res.Rows[0].Period)
	assert.True(t, res.Summary.GrossProfit.Equal(decimal.NewFromInt(60)),
		"gross profit %s", res.Summary.GrossProfit)
	assert.True(t, res.Summary.TotalRevenue.Equal(decimal.NewFromInt(170)))
}

func TestProfitReport_GroupByProduct(t *testing.T) {
	id := uuid.New()
	repo := &fakeProfitRepo{items: []report.ProfitItem{
		{
			ProductID:     id,
			ProductName:   "Widget",
			Date:          time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Quantity:      decimal.NewFromInt(1),
			Total:         decimal.NewFromInt(60),
			PurchasePrice: decimal.NewFromInt(40),
		},
		{
			ProductID:     id,
			ProductName:   "Widget",
			Date:          time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			Quantity:      decimal.NewFromInt(1),
			Total:         decimal.NewFromInt(60),
			PurchasePrice: decimal.NewFromInt(40),
		},
	}}
	svc := NewProfitService(repo)

	res, err := svc.ProfitReport(context.Background(), report.RawFilter{GroupBy: "product"})
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Widget", res.Rows[0].Name)
	assert.True(t, res.Rows[0].QuantitySold.Equal(decimal.NewFromInt(2)))
	assert.True(t, res.Rows[0].Profit.Equal(decimal.NewFromInt(40)))
}

func TestProfitReport_InvalidGroupByRejected(t *testing.T) {
	svc := NewProfitService(&fakeProfitRepo{})

	_, err := svc.ProfitReport(context.Background(), report.RawFilter{GroupBy: "hourly"})
	require.Error(t, err)
}
