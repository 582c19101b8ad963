package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracking-jobs/backend/internal/auth"
	"github.com/tracking-jobs/backend/internal/dtos"
	"github.com/tracking-jobs/backend/internal/services"
)

type DashboardHandler struct {
	StatsService *services.StatsService
}

func NewDashboardHandler(stats *services.StatsService) *DashboardHandler {
	return &DashboardHandler{StatsService: stats}
}

// Dashboard returns the summary numbers plus the two home-page lists in one
// round trip.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	userID := auth.UserID(c)

	stats, err := h.StatsService.DashboardStats(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	recent, err := h.StatsService.RecentJobs(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	upcoming, err := h.StatsService.UpcomingInterviews(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dtos.DashboardResponse{
		Stats:              *stats,
		RecentJobs:         recent,
		UpcomingInterviews: upcoming,
	})
}
