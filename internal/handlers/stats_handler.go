package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// StatsHandler serves the admin dashboard counters and the health probes
type StatsHandler struct {
	statsService services.StatsService
	db           Pinger
}

// Pinger checks that the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewStatsHandler(statsService services.StatsService, db Pinger) *StatsHandler {
	return &StatsHandler{statsService: statsService, db: db}
}

// GetAdminStats handles GET /admin-stats
func (h *StatsHandler) GetAdminStats(c *gin.Context) {
	stats, err := h.statsService.GetAdminStats(c.Request.Context())
	if err != nil {
		serverError(c, "get stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Welcome handles GET /
func (h *StatsHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to MCPITC Server")
}

// Health handles GET /healthz
func (h *StatsHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
