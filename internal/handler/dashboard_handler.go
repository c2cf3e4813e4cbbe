package handler

import (
	"log"
	"net/http"

	"commerce_api/internal/service"
	"commerce_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate reports
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) StockReport(c *gin.Context) {
	report, err := h.service.StockReport(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching stock report: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching stock report")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Stock report retrieved successfully", report)
}

func (h *DashboardHandler) MonthlyRevenue(c *gin.Context) {
	report, err := h.service.MonthlyRevenue(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching monthly revenue: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching monthly revenue")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Monthly revenue retrieved successfully", report)
}

// RegisterDashboardRoutes registers the dashboard report routes
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(authMW)
	{
		dashboard.GET("/stock", h.StockReport)
		dashboard.GET("/revenue", h.MonthlyRevenue)
	}
}
