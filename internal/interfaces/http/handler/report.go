package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/shopstack/backend/internal/application/report"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/interfaces/http/dto"
)

// ReportHandler handles report API endpoints
type ReportHandler struct {
	BaseHandler
	reports *reportapp.ReportService
	profit  *reportapp.ProfitService
	export  *reportapp.ExportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	reports *reportapp.ReportService,
	profit *reportapp.ProfitService,
	export *reportapp.ExportService,
) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		profit:  profit,
		export:  export,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.Sales)
		reports.GET("/sales/export/excel", h.SalesExcel)
		reports.GET("/purchases", h.Purchases)
		reports.GET("/stock", h.Stock)
		reports.GET("/due", h.Due)
		reports.GET("/profit", h.Profit)
	}
}

func bindFilter(c *gin.Context) (report.RawFilter, bool) {
	var raw report.RawFilter
	if err := c.ShouldBindQuery(&raw); err != nil {
		return report.RawFilter{}, false
	}
	return raw, true
}

// Sales returns the filtered sales report.
func (h *ReportHandler) Sales(c *gin.Context) {
	raw, ok := bindFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	result, err := h.reports.SalesReport(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesReportEnvelope(result))
}

// SalesExcel streams the filtered sales report as an xlsx attachment.
func (h *ReportHandler) SalesExcel(c *gin.Context) {
	raw, ok := bindFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	buf, err := h.export.SalesReportExcel(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// Purchases returns the filtered purchase report.
func (h *ReportHandler) Purchases(c *gin.Context) {
	raw, ok := bindFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	result, err := h.reports.PurchaseReport(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseReportEnvelope(result))
}

// Stock returns the filtered stock report.
func (h *ReportHandler) Stock(c *gin.Context) {
	raw, ok := bindFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	result, err := h.reports.StockReport(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStockReportEnvelope(result))
}

// Due returns the filtered due report.
func (h *ReportHandler) Due(c *gin.Context) {
	raw, ok := bindFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	result, err := h.reports.DueReport(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDueReportEnvelope(result))
}

// Profit returns the grouped profit report.
func (h *ReportHandler) Profit(c *gin.Context) {
	raw, ok := bindFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	result, err := h.profit.ProfitReport(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitReportResponse(result))
}
