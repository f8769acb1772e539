package dto

import (
	"github.com/google/uuid"

	reportapp "github.com/shopstack/backend/internal/application/report"
)

// DashboardMetricsResponse is the scalar block of the dashboard.
type DashboardMetricsResponse struct {
	TodaySales      float64 `json:"today_sales"`
	YesterdaySales  float64 `json:"yesterday_sales"`
	MonthSales      float64 `json:"month_sales"`
	LastMonthSales  float64 `json:"last_month_sales"`
	SalesGrowth     float64 `json:"sales_growth"`
	MonthGrowth     float64 `json:"month_growth"`
	TodayPurchases  float64 `json:"today_purchases"`
	MonthPurchases  float64 `json:"month_purchases"`
	CustomerDue     float64 `json:"customer_due"`
	SupplierDue     float64 `json:"supplier_due"`
	MonthProfit     float64 `json:"month_profit"`
	TotalProducts   int64   `json:"total_products"`
	LowStockCount   int64   `json:"low_stock_count"`
	ActiveCustomers int64   `json:"active_customers"`
	ActiveSuppliers int64   `json:"active_suppliers"`
}

// TopProductResponse is a best-seller entry.
type TopProductResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	QuantitySold float64   `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
}

// TopCustomerResponse is a highest-revenue customer entry.
type TopCustomerResponse struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	Name         string    `json:"name"`
	InvoiceCount int64     `json:"invoice_count"`
	Total        float64   `json:"total"`
}

// LowStockItemResponse is a replenishment alert entry.
type LowStockItemResponse struct {
	ProductID         uuid.UUID `json:"product_id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku"`
	WarehouseName     string    `json:"warehouse_name"`
	Quantity          float64   `json:"quantity"`
	MinimumStockLevel float64   `json:"minimum_stock_level"`
	Needed            float64   `json:"needed"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Metrics       DashboardMetricsResponse `json:"metrics"`
	SalesTrend    []TrendPointResponse     `json:"sales_trend"`
	WeeklyTrend   []TrendPointResponse     `json:"weekly_trend"`
	TopProducts   []TopProductResponse     `json:"top_products"`
	TopCustomers  []TopCustomerResponse    `json:"top_customers"`
	LowStockItems []LowStockItemResponse   `json:"low_stock_items"`
	RecentSales   []SalesRowResponse       `json:"recent_sales"`
}

// ToDashboardResponse converts the dashboard payload.
func ToDashboardResponse(d *reportapp.Dashboard) DashboardResponse {
	topProducts := make([]TopProductResponse, len(d.TopProducts))
	for i, p := range d.TopProducts {
		topProducts[i] = TopProductResponse{
			ProductID:    p.ProductID,
			Name:         p.Name,
			QuantitySold: p.QuantitySold.InexactFloat64(),
			Revenue:      p.Revenue.InexactFloat64(),
		}
	}
	topCustomers := make([]TopCustomerResponse, len(d.TopCustomers))
	for i, c := range d.TopCustomers {
		topCustomers[i] = TopCustomerResponse{
			CustomerID:   c.CustomerID,
			Name:         c.Name,
			InvoiceCount: c.InvoiceCount,
			Total:        c.Total.InexactFloat64(),
		}
	}
	lowStock := make([]LowStockItemResponse, len(d.LowStockItems))
	for i, item := range d.LowStockItems {
		lowStock[i] = LowStockItemResponse{
			ProductID:         item.ProductID,
			Name:              item.Name,
			SKU:               item.SKU,
			WarehouseName:     item.WarehouseName,
			Quantity:          item.Quantity.InexactFloat64(),
			MinimumStockLevel: item.MinimumStockLevel.InexactFloat64(),
			Needed:            item.Needed.InexactFloat64(),
		}
	}
	recent := make([]SalesRowResponse, len(d.RecentSales))
	for i, r := range d.RecentSales {
		recent[i] = SalesRowResponse{
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

	return DashboardResponse{
		Metrics: DashboardMetricsResponse{
			TodaySales:      d.Metrics.TodaySales.InexactFloat64(),
			YesterdaySales:  d.Metrics.YesterdaySales.InexactFloat64(),
			MonthSales:      d.Metrics.MonthSales.InexactFloat64(),
			LastMonthSales:  d.Metrics.LastMonthSales.InexactFloat64(),
			SalesGrowth:     d.Metrics.SalesGrowth.InexactFloat64(),
			MonthGrowth:     d.Metrics.MonthGrowth.InexactFloat64(),
			TodayPurchases:  d.Metrics.TodayPurchases.InexactFloat64(),
			MonthPurchases:  d.Metrics.MonthPurchases.InexactFloat64(),
			CustomerDue:     d.Metrics.CustomerDue.InexactFloat64(),
			SupplierDue:     d.Metrics.SupplierDue.InexactFloat64(),
			MonthProfit:     d.Metrics.MonthProfit.InexactFloat64(),
			TotalProducts:   d.Metrics.TotalProducts,
			LowStockCount:   d.Metrics.LowStockCount,
			ActiveCustomers: d.Metrics.ActiveCustomers,
			ActiveSuppliers: d.Metrics.ActiveSuppliers,
		},
		SalesTrend:    ToTrendPoints(d.SalesTrend7),
		WeeklyTrend:   ToTrendPoints(d.SalesTrend4W),
		TopProducts:   topProducts,
		TopCustomers:  topCustomers,
		LowStockItems: lowStock,
		RecentSales:   recent,
	}
}
