package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/services/stats/handler/http"
)

// Handler coordinates the stats service HTTP routes
type Handler struct {
	statsHandler *http.StatsHandler
}

// NewHandler creates and initializes the stats handler
func NewHandler(statsHandler *http.StatsHandler) *Handler {
	return &Handler{statsHandler: statsHandler}
}

// RegisterRoutes registers the read-only aggregate endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/stats")
	group.GET("/system", h.statsHandler.GetSystemStats)
	group.GET("/user", h.statsHandler.GetUserStats)
	group.GET("/collector", h.statsHandler.GetCollectorStats)
}
