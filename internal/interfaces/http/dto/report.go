package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	reportapp "github.com/shopstack/backend/internal/application/report"
	"github.com/shopstack/backend/internal/domain/report"
)

// ReportEnvelope is the canonical report response. Besides the standard
// data/summary/pagination keys it repeats the rows under a per-report
// alias key (sales, purchases, stock, due) that older clients read.
type ReportEnvelope struct {
	Alias       string
	Rows        interface{}
	Summary     interface{}
	TopProducts interface{}
	Page        reportapp.Page
}

// MarshalJSON emits the envelope flat, with the alias key carrying the
// identical row slice.
func (e ReportEnvelope) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"data":         e.Rows,
		"summary":      e.Summary,
		"current_page": e.Page.CurrentPage,
		"last_page":    e.Page.LastPage,
		"per_page":     e.Page.PerPage,
		"total":        e.Page.Total,
	}
	if e.Alias != "" {
		payload[e.Alias] = e.Rows
	}
	if e.TopProducts != nil {
		payload["top_products"] = e.TopProducts
	}
	return json.Marshal(payload)
}

// SalesRowResponse is one sales report line.
type SalesRowResponse struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerName  string    `json:"customer_name"`
	InvoiceDate   string    `json:"invoice_date"`
	DueDate       string    `json:"due_date,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	PaidAmount    float64   `json:"paid_amount"`
	BalanceAmount float64   `json:"balance_amount"`
	Status        string    `json:"status"`
}

// SalesSummaryResponse is the filter-wide sales rollup.
type SalesSummaryResponse struct {
	TotalSales    float64 `json:"total_sales"`
	TotalPaid     float64 `json:"total_paid"`
	TotalDue      float64 `json:"total_due"`
	TotalDiscount float64 `json:"total_discount"`
	TotalInvoices int64   `json:"total_invoices"`
}

const dateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// ToSalesReportEnvelope converts a sales report result.
func ToSalesReportEnvelope(result *reportapp.SalesReportResult) ReportEnvelope {
	rows := make([]SalesRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = SalesRowResponse{
			ID:            r.ID,
			InvoiceNumber: r.InvoiceNumber,
			CustomerName:  r.CustomerName,
			InvoiceDate:   r.InvoiceDate.Format(dateLayout),
			DueDate:       formatDatePtr(r.DueDate),
			TotalAmount:   r.TotalAmount.InexactFloat64(),
			PaidAmount:    r.PaidAmount.InexactFloat64(),
			BalanceAmount: r.BalanceAmount.InexactFloat64(),
			Status:        r.Status,
		}
	}
	return ReportEnvelope{
		Alias: "sales",
		Rows:  rows,
		Summary: SalesSummaryResponse{
			TotalSales:    result.Summary.TotalSales.InexactFloat64(),
			TotalPaid:     result.Summary.TotalPaid.InexactFloat64(),
			TotalDue:      result.Summary.TotalDue.InexactFloat64(),
			TotalDiscount: result.Summary.TotalDiscount.InexactFloat64(),
			TotalInvoices: result.Summary.TotalInvoices,
		},
		Page: result.Page,
	}
}

// PurchaseRowResponse is one purchase report line.
type PurchaseRowResponse struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	SupplierName  string    `json:"supplier_name"`
	InvoiceDate   string    `json:"invoice_date"`
	DueDate       string    `json:"due_date,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	PaidAmount    float64   `json:"paid_amount"`
	BalanceAmount float64   `json:"balance_amount"`
	Status        string    `json:"status"`
}

// PurchaseSummaryResponse is the filter-wide purchase rollup.
type PurchaseSummaryResponse struct {
	TotalPurchases float64 `json:"total_purchases"`
	TotalPaid      float64 `json:"total_paid"`
	TotalDue       float64 `json:"total_due"`
	TotalDiscount  float64 `json:"total_discount"`
	TotalInvoices  int64   `json:"total_invoices"`
}

// ToPurchaseReportEnvelope converts a purchase report result.
func ToPurchaseReportEnvelope(result *reportapp.PurchaseReportResult) ReportEnvelope {
	rows := make([]PurchaseRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = PurchaseRowResponse{
			ID:            r.ID,
			InvoiceNumber: r.InvoiceNumber,
			SupplierName:  r.SupplierName,
			InvoiceDate:   r.InvoiceDate.Format(dateLayout),
			DueDate:       formatDatePtr(r.DueDate),
			TotalAmount:   r.TotalAmount.InexactFloat64(),
			PaidAmount:    r.PaidAmount.InexactFloat64(),
			BalanceAmount: r.BalanceAmount.InexactFloat64(),
			Status:        r.Status,
		}
	}
	return ReportEnvelope{
		Alias: "purchases",
		Rows:  rows,
		Summary: PurchaseSummaryResponse{
			TotalPurchases: result.Summary.TotalPurchases.InexactFloat64(),
			TotalPaid:      result.Summary.TotalPaid.InexactFloat64(),
			TotalDue:       result.Summary.TotalDue.InexactFloat64(),
			TotalDiscount:  result.Summary.TotalDiscount.InexactFloat64(),
			TotalInvoices:  result.Summary.TotalInvoices,
		},
		Page: result.Page,
	}
}

// StockRowResponse is one stock report line.
type StockRowResponse struct {
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	SKU               string    `json:"sku"`
	CategoryName      string    `json:"category_name,omitempty"`
	WarehouseName     string    `json:"warehouse_name"`
	Quantity          float64   `json:"quantity"`
	MinimumStockLevel float64   `json:"minimum_stock_level"`
	PurchasePrice     float64   `json:"purchase_price"`
	StockValue        float64   `json:"stock_value"`
	StockStatus       string    `json:"stock_status"`
}

// StockSummaryResponse is the stock report rollup.
type StockSummaryResponse struct {
	TotalItems      int64   `json:"total_items"`
	TotalQuantity   float64 `json:"total_quantity"`
	TotalStockValue float64 `json:"total_stock_value"`
	LowStockCount   int64   `json:"low_stock_count"`
	OutOfStockCount int64   `json:"out_of_stock_count"`
}

// ToStockReportEnvelope converts a stock report result.
func ToStockReportEnvelope(result *reportapp.StockReportResult) ReportEnvelope {
	rows := make([]StockRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = StockRowResponse{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			SKU:               r.SKU,
			CategoryName:      r.CategoryName,
			WarehouseName:     r.WarehouseName,
			Quantity:          r.Quantity.InexactFloat64(),
			MinimumStockLevel: r.MinimumStockLevel.InexactFloat64(),
			PurchasePrice:     r.PurchasePrice.InexactFloat64(),
			StockValue:        r.StockValue.InexactFloat64(),
			StockStatus:       r.StockStatus,
		}
	}
	return ReportEnvelope{
		Alias: "stock",
		Rows:  rows,
		Summary: StockSummaryResponse{
			TotalItems:      result.Summary.TotalItems,
			TotalQuantity:   result.Summary.TotalQuantity.InexactFloat64(),
			TotalStockValue: result.Summary.TotalStockValue.InexactFloat64(),
			LowStockCount:   result.Summary.LowStockCount,
			OutOfStockCount: result.Summary.OutOfStockCount,
		},
		Page: result.Page,
	}
}

// DueRowResponse is one party's aggregated outstanding position.
type DueRowResponse struct {
	PartyID       uuid.UUID `json:"party_id"`
	PartyName     string    `json:"party_name"`
	Phone         string    `json:"phone,omitempty"`
	InvoiceCount  int64     `json:"invoice_count"`
	DueAmount     float64   `json:"due_amount"`
	OldestDueDate string    `json:"oldest_due_date,omitempty"`
	IsOverdue     bool      `json:"is_overdue"`
}

// DueSummaryResponse is the due report rollup.
type DueSummaryResponse struct {
	TotalDue      float64 `json:"total_due"`
	OverdueAmount float64 `json:"overdue_amount"`
	TotalParties  int64   `json:"total_parties"`
	TotalInvoices int64   `json:"total_invoices"`
}

// ToDueReportEnvelope converts a due report result.
func ToDueReportEnvelope(result *reportapp.DueReportResult) ReportEnvelope {
	rows := make([]DueRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = DueRowResponse{
			PartyID:       r.PartyID,
			PartyName:     r.PartyName,
			Phone:         r.Phone,
			InvoiceCount:  r.InvoiceCount,
			DueAmount:     r.DueAmount.InexactFloat64(),
			OldestDueDate: formatDatePtr(r.OldestDueDate),
			IsOverdue:     r.IsOverdue,
		}
	}
	return ReportEnvelope{
		Alias: "due",
		Rows:  rows,
		Summary: DueSummaryResponse{
			TotalDue:      result.Summary.TotalDue.InexactFloat64(),
			OverdueAmount: result.Summary.OverdueAmount.InexactFloat64(),
			TotalParties:  result.Summary.TotalParties,
			TotalInvoices: result.Summary.TotalInvoices,
		},
		Page: result.Page,
	}
}

// ProfitRowResponse is one grouped profit line.
type ProfitRowResponse struct {
	Name         string  `json:"name"`
	Period       string  `json:"period,omitempty"`
	QuantitySold float64 `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	Discount     float64 `json:"discount"`
	Profit       float64 `json:"profit"`
	MarginPct    float64 `json:"margin_pct"`
}

// ProfitSummaryResponse is the profit report rollup.
type ProfitSummaryResponse struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalCost     float64 `json:"total_cost"`
	TotalDiscount float64 `json:"total_discount"`
	GrossProfit   float64 `json:"gross_profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

// ProfitReportResponse carries the grouped rows twice: chart aliases
// profit for older clients.
type ProfitReportResponse struct {
	Profit  []ProfitRowResponse   `json:"profit"`
	Chart   []ProfitRowResponse   `json:"chart"`
	Summary ProfitSummaryResponse `json:"summary"`
	GroupBy string                `json:"group_by"`
}

// ToProfitReportResponse converts a profit report result.
func ToProfitReportResponse(result *reportapp.ProfitReportResult) ProfitReportResponse {
	rows := make([]ProfitRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = ProfitRowResponse{
			Name:         r.Name,
			Period:       r.Period,
			QuantitySold: r.QuantitySold.InexactFloat64(),
			Revenue:      r.Revenue.InexactFloat64(),
			Cost:         r.Cost.InexactFloat64(),
			Discount:     r.Discount.InexactFloat64(),
			Profit:       r.Profit.InexactFloat64(),
			MarginPct:    r.MarginPct.InexactFloat64(),
		}
	}
	return ProfitReportResponse{
		Profit: rows,
		Chart:  rows,
		Summary: ProfitSummaryResponse{
			TotalRevenue:  result.Summary.TotalRevenue.InexactFloat64(),
			TotalCost:     result.Summary.TotalCost.InexactFloat64(),
			TotalDiscount: result.Summary.TotalDiscount.InexactFloat64(),
			GrossProfit:   result.Summary.GrossProfit.InexactFloat64(),
			ProfitMargin:  result.Summary.ProfitMargin.InexactFloat64(),
		},
		GroupBy: string(result.GroupBy),
	}
}

// TrendPointResponse is one chart point.
type TrendPointResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ToTrendPoints converts trend points for charting.
func ToTrendPoints(points []report.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, len(points))
	for i, p := range points {
		out[i] = TrendPointResponse{Label: p.Label, Amount: p.Amount.InexactFloat64()}
	}
	return out
}
