package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/shopstack/backend/internal/application/trade"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/trade"
	"github.com/shopstack/backend/internal/interfaces/http/dto"
)

// SaleHandler handles sale invoice API endpoints
type SaleHandler struct {
	BaseHandler
	sales *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(sales *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/:id", h.Get)
		sales.PUT("/:id", h.Update)
		sales.POST("/:id/cancel", h.Cancel)
		sales.DELETE("/:id", h.Delete)
	}
}

func bindInvoiceListQuery(c *gin.Context) (trade.ListQuery, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return trade.ListQuery{}, false
	}
	query := trade.ListQuery{
		Page:    req.Page,
		PerPage: req.PerPage,
		SortBy:  req.SortBy,
		SortDir: req.SortDir,
		Search:  req.Search,
	}
	if raw := c.Query("status"); raw != "" {
		status := trade.InvoiceStatus(raw)
		if !status.IsValid() {
			return trade.ListQuery{}, false
		}
		query.Status = &status
	}
	if raw := c.Query("warehouse_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return trade.ListQuery{}, false
		}
		query.WarehouseID = &id
	}
	return query, true
}

// Create captures a sale invoice
func (h *SaleHandler) Create(c *gin.Context) {
	var sale trade.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	created, err := h.sales.Create(c.Request.Context(), &sale)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns a page of sale invoices
func (h *SaleHandler) List(c *gin.Context) {
	query, ok := bindInvoiceListQuery(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	sales, total, err := h.sales.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, sales, total, query.Page, query.PerPage, report.LastPage(total, query.PerPage))
}

// Get returns one sale invoice with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	sale, err := h.sales.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Update replaces the mutable fields of a sale invoice
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	var sale trade.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	updated, err := h.sales.Update(c.Request.Context(), id, &sale)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Cancel cancels a sale invoice and returns its stock
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	cancelled, err := h.sales.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cancelled)
}

// Delete removes a sale invoice
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	if err := h.sales.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
