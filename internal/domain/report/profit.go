package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitItem is one sale line enriched with its product's current cost
// basis. Only lines of non-cancelled sales are fed in.
type ProfitItem struct {
	ProductID     uuid.UUID
	ProductName   string
	CategoryName  *string
	Date          time.Time
	Quantity      decimal.Decimal
	Total         decimal.Decimal
	Discount      decimal.Decimal
	PurchasePrice decimal.Decimal
}

// ProfitRow is one group of the profit report. Period is set for time
// groupings, Name for product/category groupings.
type ProfitRow struct {
	Key          string
	Name         string
	Period       string
	QuantitySold decimal.Decimal
	Revenue      decimal.Decimal
	Cost         decimal.Decimal
	Discount     decimal.Decimal
	Profit       decimal.Decimal
	MarginPct    decimal.Decimal
}

// ProfitSummary is the rollup across all groups.
type ProfitSummary struct {
	TotalRevenue  decimal.Decimal
	TotalCost     decimal.Decimal
	TotalDiscount decimal.Decimal
	GrossProfit   decimal.Decimal
	ProfitMargin  decimal.Decimal
}

// UncategorizedLabel names the group of products without a category.
const UncategorizedLabel = "Uncategorized"

type profitAcc struct {
	name     string
	period   string
	quantity decimal.Decimal
	revenue  decimal.Decimal
	cost     decimal.Decimal
	discount decimal.Decimal
}

// GroupProfit folds sale lines into profit groups along one dimension.
// All groupings share the same math: profit = revenue - cost - discount
// with cost = quantity times the product's current purchase price.
// Groups keep the order of first occurrence; lines with a zero date are
// skipped for period groupings.
func GroupProfit(items []ProfitItem, by GroupBy) []ProfitRow {
	keys := make([]string, 0)
	groups := make(map[string]*profitAcc)

	for _, item := range items {
		key, name, period := groupIdentity(item, by)
		if key == "" {
			continue
		}
		acc, ok := groups[key]
		if !ok {
			acc = &profitAcc{name: name, period: period}
			groups[key] = acc
			keys = append(keys, key)
		}
		acc.quantity = acc.quantity.Add(item.Quantity)
		acc.revenue = acc.revenue.Add(item.Total)
		acc.cost = acc.cost.Add(item.Quantity.Mul(item.PurchasePrice))
		acc.discount = acc.discount.Add(item.Discount)
	}

	rows := make([]ProfitRow, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		profit := acc.revenue.Sub(acc.cost).Sub(acc.discount)
		rows = append(rows, ProfitRow{
			Key:          key,
			Name:         acc.name,
			Period:       acc.period,
			QuantitySold: acc.quantity,
			Revenue:      acc.revenue,
			Cost:         acc.cost,
			Discount:     acc.discount,
			Profit:       profit,
			MarginPct:    marginPct(profit, acc.revenue),
		})
	}
	return rows
}

func groupIdentity(item ProfitItem, by GroupBy) (key, name, period string) {
	switch by {
	case GroupByProduct:
		return item.ProductID.String(), item.ProductName, ""
	case GroupByCategory:
		label := UncategorizedLabel
		if item.CategoryName != nil && *item.CategoryName != "" {
			label = *item.CategoryName
		}
		return label, label, ""
	case GroupByDaily, GroupByWeekly, GroupByMonthly:
		bucket := PeriodKey(item.Date, by)
		return bucket, "-", bucket
	}
	return "", "", ""
}

// SummarizeProfit rolls the grouped rows up into report totals.
func SummarizeProfit(rows []ProfitRow) ProfitSummary {
	var s ProfitSummary
	for _, row := range rows {
		s.TotalRevenue = s.TotalRevenue.Add(row.Revenue)
		s.TotalCost = s.TotalCost.Add(row.Cost)
		s.TotalDiscount = s.TotalDiscount.Add(row.Discount)
	}
	s.GrossProfit = s.TotalRevenue.Sub(s.TotalCost).Sub(s.TotalDiscount)
	s.ProfitMargin = marginPct(s.GrossProfit, s.TotalRevenue)
	return s
}

func marginPct(profit, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100))
}
