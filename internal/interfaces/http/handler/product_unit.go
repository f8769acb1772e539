package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopstack/backend/internal/application/catalog"
	"github.com/shopstack/backend/internal/domain/catalog"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/interfaces/http/dto"
)

// ProductUnitHandler handles unit-of-measure API endpoints
type ProductUnitHandler struct {
	BaseHandler
	units *catalogapp.ProductUnitService
}

// NewProductUnitHandler creates a new ProductUnitHandler
func NewProductUnitHandler(units *catalogapp.ProductUnitService) *ProductUnitHandler {
	return &ProductUnitHandler{units: units}
}

// RegisterRoutes registers product unit routes
func (h *ProductUnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	{
		units.POST("", h.Create)
		units.GET("", h.List)
		units.GET("/:id", h.Get)
		units.PUT("/:id", h.Update)
		units.DELETE("/:id", h.Delete)
	}
}

// Create creates a product unit
func (h *ProductUnitHandler) Create(c *gin.Context) {
	var unit catalog.ProductUnit
	if err := c.ShouldBindJSON(&unit); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	created, err := h.units.Create(c.Request.Context(), &unit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns a page of product units
func (h *ProductUnitHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	units, total, err := h.units.List(c.Request.Context(), catalog.ListQuery{
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
	h.SuccessWithMeta(c, units, total, req.Page, req.PerPage, report.LastPage(total, req.PerPage))
}

// Get returns one product unit
func (h *ProductUnitHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}
	unit, err := h.units.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// Update updates a product unit
func (h *ProductUnitHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}
	var unit catalog.ProductUnit
	if err := c.ShouldBindJSON(&unit); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	updated, err := h.units.Update(c.Request.Context(), id, &unit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete deletes a product unit
func (h *ProductUnitHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}
	if err := h.units.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
