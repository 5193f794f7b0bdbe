package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard serves the admin overview: collection totals, today's and this
// week's appointment counts, and the merged recent-activity feed. The
// underlying queries run concurrently and can see different instants of the
// store.
func (h *Handler) GetDashboard(c *gin.Context) {
	summary, err := h.DashboardSvc.BuildSummary(context.TODO())
	if err != nil {
		log.Printf("dashboard aggregation failed (trace %s): %v", c.GetString("traceID"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
