package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inventoryapp "github.com/shopstack/backend/internal/application/inventory"
)

// StockHandler handles manual stock API endpoints
type StockHandler struct {
	BaseHandler
	stocks *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stocks *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stocks: stocks}
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stocks := rg.Group("/stocks")
	{
		stocks.GET("", h.Get)
		stocks.POST("", h.Set)
		stocks.POST("/adjust", h.Adjust)
	}
}

type stockQuery struct {
	ProductID   string `form:"product_id" binding:"required,uuid"`
	WarehouseID string `form:"warehouse_id" binding:"required,uuid"`
}

type stockSetRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type stockAdjustRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	Delta       decimal.Decimal `json:"delta"`
}

// Get returns the stock row for one product in one warehouse
func (h *StockHandler) Get(c *gin.Context) {
	var req stockQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "product_id and warehouse_id are required")
		return
	}
	productID, _ := uuid.Parse(req.ProductID)
	warehouseID, _ := uuid.Parse(req.WarehouseID)

	stock, err := h.stocks.Get(c.Request.Context(), productID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stock)
}

// Set overwrites the on-hand quantity after a stocktake
func (h *StockHandler) Set(c *gin.Context) {
	var req stockSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	stock, err := h.stocks.Set(c.Request.Context(), req.ProductID, req.WarehouseID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stock)
}

// Adjust applies a signed correction to the on-hand quantity
func (h *StockHandler) Adjust(c *gin.Context) {
	var req stockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.stocks.Adjust(c.Request.Context(), req.ProductID, req.WarehouseID, req.Delta); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
