package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/shopstack/backend/internal/application/partner"
	"github.com/shopstack/backend/internal/domain/partner"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/interfaces/http/dto"
)

// WarehouseHandler handles warehouse API endpoints
type WarehouseHandler struct {
	BaseHandler
	warehouses *partnerapp.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouses *partnerapp.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouses: warehouses}
}

// RegisterRoutes registers warehouse routes
func (h *WarehouseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", h.Create)
		warehouses.GET("", h.List)
		warehouses.GET("/:id", h.Get)
		warehouses.PUT("/:id", h.Update)
		warehouses.DELETE("/:id", h.Delete)
	}
}

// Create creates a warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	var warehouse partner.Warehouse
	if err := c.ShouldBindJSON(&warehouse); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	created, err := h.warehouses.Create(c.Request.Context(), &warehouse)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns a page of warehouses
func (h *WarehouseHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	warehouses, total, err := h.warehouses.List(c.Request.Context(), partner.ListQuery{
		Page:    req.Page,
		PerPage: req.PerPage,
		SortBy:  req.SortBy,
		SortDir: req.SortDir,
		Search:  req.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, warehouses, total, req.Page, req.PerPage, report.LastPage(total, req.PerPage))
}

// Get returns one warehouse
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}
	warehouse, err := h.warehouses.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouse)
}

// Update updates a warehouse
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}
	var warehouse partner.Warehouse
	if err := c.ShouldBindJSON(&warehouse); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	updated, err := h.warehouses.Update(c.Request.Context(), id, &warehouse)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete deletes a warehouse
func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}
	if err := h.warehouses.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
