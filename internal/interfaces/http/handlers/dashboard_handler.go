package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
)

// DashboardHandler serves the admin home page statistics
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Stats returns aggregate counts across every resource
// GET /api/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
