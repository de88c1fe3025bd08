package handlers

import (
	"net/http"

	"huduma/services/stats"
	"huduma/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler serves the admin dashboard metrics.
type StatsHandler struct {
	StatsSvc stats.StatsService
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(svc stats.StatsService) *StatsHandler {
	return &StatsHandler{StatsSvc: svc}
}

// Summary returns the dashboard aggregates. Aggregation never fails the
// request: on a fetch error it degrades to a zero-valued summary and the
// dashboard retries on its own schedule.
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.StatsSvc.Summary(c.Request.Context())
	if err != nil {
		utils.GetLogger().Warn("stats fetch failed, serving zero summary", zap.Error(err))
		summary = &stats.Summary{}
	}
	c.JSON(http.StatusOK, summary)
}
