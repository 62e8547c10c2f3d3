package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/services/tracking/handler/http"
)

// Handler coordinates the tracking service HTTP routes
type Handler struct {
	trackingHandler *http.TrackingHandler
}

// NewHandler creates and initializes the tracking handler
func NewHandler(trackingHandler *http.TrackingHandler) *Handler {
	return &Handler{trackingHandler: trackingHandler}
}

// RegisterRoutes registers the tracking endpoints. They are served openly
// so collector devices can report without a user session.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/tracking")
	group.GET("", h.trackingHandler.GetCurrentLocation)
	group.POST("", h.trackingHandler.RecordLocation)
	group.GET("/history", h.trackingHandler.GetHistory)
	group.POST("/history", h.trackingHandler.RecordLocation)
	group.DELETE("/history", h.trackingHandler.DeleteLocation)
}
