package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupProfit_Math(t *testing.T) {
	// total 120, quantity 2, purchase price 40, discount 10:
	// profit = 120 - 80 - 10 = 30, margin = 25%.
	item := ProfitItem{
		ProductID:     uuid.New(),
		ProductName:   "Widget",
		Quantity:      decimal.NewFromInt(2),
		Total:         decimal.NewFromInt(120),
		Discount:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(40),
	}

	rows := GroupProfit([]ProfitItem{item}, GroupByProduct)
	require.Len(t, rows, 1)

	assert.Equal(t, "Widget", rows[0].Name)
	assert.True(t, rows[0].Profit.Equal(decimal.NewFromInt(30)))
	assert.True(t, rows[0].MarginPct.Equal(decimal.NewFromInt(25)))
}

func TestGroupProfit_ZeroRevenueMargin(t *testing.T) {
	item := ProfitItem{
		ProductID:     uuid.New(),
		ProductName:   "Freebie",
		Quantity:      decimal.NewFromInt(1),
		Total:         decimal.Zero,
		PurchasePrice: decimal.NewFromInt(5),
	}

	rows := GroupProfit([]ProfitItem{item}, GroupByProduct)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].MarginPct.IsZero())
	assert.True(t, rows[0].Profit.Equal(decimal.NewFromInt(-5)))
}

func TestGroupProfit_ByCategory(t *testing.T) {
	drinks := "Drinks"
	items := []ProfitItem{
		{ProductID: uuid.New(), ProductName: "Cola", CategoryName: &drinks,
			Quantity: decimal.NewFromInt(1), Total: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromInt(4)},
		{ProductID: uuid.New(), ProductName: "Juice", CategoryName: &drinks,
			Quantity: decimal.NewFromInt(2), Total: decimal.NewFromInt(30), PurchasePrice: decimal.NewFromInt(5)},
		{ProductID: uuid.New(), ProductName: "Mystery",
			Quantity: decimal.NewFromInt(1), Total: decimal.NewFromInt(7), PurchasePrice: decimal.NewFromInt(2)},
	}

	rows := GroupProfit(items, GroupByCategory)
	require.Len(t, rows, 2)

	assert.Equal(t, "Drinks", rows[0].Name)
	assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(40)))
	assert.True(t, rows[0].Cost.Equal(decimal.NewFromInt(14)))
	assert.True(t, rows[0].Profit.Equal(decimal.NewFromInt(26)))

	assert.Equal(t, UncategorizedLabel, rows[1].Name)
	assert.True(t, rows[1].Profit.Equal(decimal.NewFromInt(5)))
}

func TestGroupProfit_ByPeriod(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local)

	items := []ProfitItem{
		{ProductID: uuid.New(), Date: day1, Quantity: decimal.NewFromInt(1),
			Total: decimal.NewFromInt(50), PurchasePrice: decimal.NewFromInt(20)},
		{ProductID: uuid.New(), Date: day2, Quantity: decimal.NewFromInt(1),
			Total: decimal.NewFromInt(60), PurchasePrice: decimal.NewFromInt(25)},
		{ProductID: uuid.New(), Date: day1.Add(2 * time.Hour), Quantity: decimal.NewFromInt(1),
			Total: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromInt(5)},
		// zero-dated rows are dropped, not bucketed as unknown
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1),
			Total: decimal.NewFromInt(999), PurchasePrice: decimal.NewFromInt(1)},
	}

	rows := GroupProfit(items, GroupByDaily)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-03-10", rows[0].Period)
	assert.Equal(t, "-", rows[0].Name)
	assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "2024-03-11", rows[1].Period)
}

func TestGroupProfit_FirstOccurrenceOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	items := []ProfitItem{
		{ProductID: b, ProductName: "B", Quantity: decimal.NewFromInt(1), Total: decimal.NewFromInt(1)},
		{ProductID: a, ProductName: "A", Quantity: decimal.NewFromInt(1), Total: decimal.NewFromInt(1)},
		{ProductID: b, ProductName: "B", Quantity: decimal.NewFromInt(1), Total: decimal.NewFromInt(1)},
	}

	rows := GroupProfit(items, GroupByProduct)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Name)
	assert.Equal(t, "A", rows[1].Name)
	assert.True(t, rows[0].QuantitySold.Equal(decimal.NewFromInt(2)))
}

func TestSummarizeProfit(t *testing.T) {
	rows := []ProfitRow{
		{Revenue: decimal.NewFromInt(100), Cost: decimal.NewFromInt(60), Discount: decimal.NewFromInt(10)},
		{Revenue: decimal.NewFromInt(50), Cost: decimal.NewFromInt(20)},
	}

	s := SummarizeProfit(rows)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.TotalCost.Equal(decimal.NewFromInt(80)))
	assert.True(t, s.TotalDiscount.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.GrossProfit.Equal(decimal.NewFromInt(60)))
	assert.True(t, s.ProfitMargin.Equal(decimal.NewFromInt(40)))
}

func TestSummarizeProfit_Empty(t *testing.T) {
	s := SummarizeProfit(nil)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.GrossProfit.IsZero())
	assert.True(t, s.ProfitMargin.IsZero())
}
