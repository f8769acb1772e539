package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportapp "github.com/shopstack/backend/internal/application/report"
	"github.com/shopstack/backend/internal/domain/report"
)

func TestReportEnvelope_AliasCarriesIdenticalRows(t *testing.T) {
	result := &reportapp.SalesReportResult{
		Rows: []report.SalesRow{
			{
				ID:            uuid.New(),
				InvoiceNumber: "INV-000001",
				CustomerName:  "Acme",
				InvoiceDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				TotalAmount:   decimal.NewFromInt(115),
				PaidAmount:    decimal.NewFromInt(50),
				BalanceAmount: decimal.NewFromInt(65),
				Status:        "partial",
			},
		},
		Summary: report.SalesSummary{
			TotalSales:    decimal.NewFromInt(115),
			TotalInvoices: 1,
		},
		Page: reportapp.Page{CurrentPage: 1, LastPage: 1, PerPage: 10, Total: 1},
	}

	raw, err := json.Marshal(ToSalesReportEnvelope(result))
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))

	require.Contains(t, payload, "data")
	require.Contains(t, payload, "sales")
	assert.JSONEq(t, string(payload["data"]), string(payload["sales"]))

	var page struct {
		CurrentPage int   `json:"current_page"`
		LastPage    int   `json:"last_page"`
		PerPage     int   `json:"per_page"`
		Total       int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, int64(1), page.Total)
}

func TestProfitResponse_ChartAliasesProfit(t *testing.T) {
	result := &reportapp.ProfitReportResult{
		Rows: []report.ProfitRow{
			{
				Name:         "Widget",
				QuantitySold: decimal.NewFromInt(2),
				Revenue:      decimal.NewFromInt(120),
				Cost:         decimal.NewFromInt(80),
				Discount:     decimal.NewFromInt(10),
				Profit:       decimal.NewFromInt(30),
				MarginPct:    decimal.NewFromInt(25),
			},
		},
		Summary: report.ProfitSummary{
			TotalRevenue: decimal.NewFromInt(120),
			GrossProfit:  decimal.NewFromInt(30),
		},
		GroupBy: report.GroupByProduct,
	}

	resp := ToProfitReportResponse(result)
	assert.Equal(t, resp.Profit, resp.Chart)
	assert.Equal(t, "product", resp.GroupBy)
	assert.InDelta(t, 25.0, resp.Profit[0].MarginPct, 0.0001)
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, GetHTTPStatus(ErrCodeValidation))
	assert.Equal(t, 404, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, 409, GetHTTPStatus(ErrCodeAlreadyExists))
	assert.Equal(t, 422, GetHTTPStatus(ErrCodeInsufficientStock))
	assert.Equal(t, 500, GetHTTPStatus("SOMETHING_ELSE"))
}
