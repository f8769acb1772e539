package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/shopstack/backend/internal/application/partner"
	"github.com/shopstack/backend/internal/domain/partner"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/interfaces/http/dto"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customers *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

// Create creates a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var customer partner.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	created, err := h.customers.Create(c.Request.Context(), &customer)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns a page of customers
func (h *CustomerHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	customers, total, err := h.customers.List(c.Request.Context(), partner.ListQuery{
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
	h.SuccessWithMeta(c, customers, total, req.Page, req.PerPage, report.LastPage(total, req.PerPage))
}

// Get returns one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Update updates a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	var customer partner.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	updated, err := h.customers.Update(c.Request.Context(), id, &customer)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete deletes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
