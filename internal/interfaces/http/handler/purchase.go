package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/shopstack/backend/internal/application/trade"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/trade"
)

// PurchaseHandler handles purchase invoice API endpoints
type PurchaseHandler struct {
	BaseHandler
	purchases *tradeapp.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchases *tradeapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// RegisterRoutes registers purchase routes
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("", h.List)
		purchases.GET("/:id", h.Get)
		purchases.PUT("/:id", h.Update)
		purchases.POST("/:id/cancel", h.Cancel)
		purchases.DELETE("/:id", h.Delete)
	}
}

// Create captures a purchase invoice
func (h *PurchaseHandler) Create(c *gin.Context) {
	var purchase trade.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	created, err := h.purchases.Create(c.Request.Context(), &purchase)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns a page of purchase invoices
func (h *PurchaseHandler) List(c *gin.Context) {
	query, ok := bindInvoiceListQuery(c)
	if !ok {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	purchases, total, err := h.purchases.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, purchases, total, query.Page, query.PerPage, report.LastPage(total, query.PerPage))
}

// Get returns one purchase invoice with its items
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}
	purchase, err := h.purchases.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchase)
}

// Update replaces the mutable fields of a purchase invoice
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}
	var purchase trade.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	updated, err := h.purchases.Update(c.Request.Context(), id, &purchase)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Cancel cancels a purchase invoice and reverses its stock
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}
	cancelled, err := h.purchases.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cancelled)
}

// Delete removes a purchase invoice
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}
	if err := h.purchases.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
