package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/billing"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/finance"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/pos"
)

// DashboardHandler aggregates live counters for the landing view.
type DashboardHandler struct {
	billingSvc *billing.Service
	financeSvc *finance.Service
	posSvc     *pos.Service
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(billingSvc *billing.Service, financeSvc *finance.Service, posSvc *pos.Service) *DashboardHandler {
	return &DashboardHandler{billingSvc: billingSvc, financeSvc: financeSvc, posSvc: posSvc}
}

// Summary derives the dashboard counters from the current store state.
func (h *DashboardHandler) Summary(c *gin.Context) {
	students := h.billingSvc.List("")
	late := 0
	for _, s := range students {
		if s.Status == models.StatusLate {
			late++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"students":      len(students),
		"late_students": late,
		"financial":     h.financeSvc.Summary(),
		"products":      len(h.posSvc.Products()),
		"low_stock":     len(h.posSvc.LowStock()),
		"cart_lines":    len(h.posSvc.Cart()),
	})
}
