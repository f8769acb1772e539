package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reportapp "github.com/shopstack/backend/internal/application/report"
	"github.com/shopstack/backend/internal/interfaces/http/dto"
)

// DashboardHandler handles the dashboard endpoint
type DashboardHandler struct {
	BaseHandler
	dashboard *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
}

// Get returns the full dashboard payload.
func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.dashboard.Build(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToDashboardResponse(d)))
}
