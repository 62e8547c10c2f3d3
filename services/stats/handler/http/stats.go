package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/stats"
)

// StatsHandler handles HTTP requests for aggregate views
type StatsHandler struct {
	statsUC stats.StatsUC
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUC stats.StatsUC) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// GetSystemStats returns the platform-wide aggregates
func (h *StatsHandler) GetSystemStats(c echo.Context) error {
	systemStats, err := h.statsUC.GetSystemStats(c.Request().Context())
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, systemStats)
}

// GetUserStats returns aggregates for the user named in the query
func (h *StatsHandler) GetUserStats(c echo.Context) error {
	userStats, err := h.statsUC.GetUserStats(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, userStats)
}

// GetCollectorStats returns aggregates for the collector named in the query
func (h *StatsHandler) GetCollectorStats(c echo.Context) error {
	collectorStats, err := h.statsUC.GetCollectorStats(c.Request().Context(), c.QueryParam("collector_id"))
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, collectorStats)
}
