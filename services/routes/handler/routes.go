package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/middleware"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/routes/handler/http"
)

// Handler coordinates the route service HTTP routes
type Handler struct {
	routeHandler *http.RouteHandler
	stopHandler  *http.RouteStopHandler
	cfg          *models.Config
}

// NewHandler creates and initializes the route handler
func NewHandler(routeHandler *http.RouteHandler, stopHandler *http.RouteStopHandler, cfg *models.Config) *Handler {
	return &Handler{
		routeHandler: routeHandler,
		stopHandler:  stopHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers route and route stop endpoints. Route CRUD
// requires authentication; the stop endpoints are served openly for
// collector devices that only hold a route assignment.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/routes", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.GET("", h.routeHandler.GetRoutes)
	group.POST("", h.routeHandler.CreateRoute)
	group.PUT("", h.routeHandler.UpdateRoute)
	group.DELETE("", h.routeHandler.DeleteRoute)

	stops := e.Group("/route-stops")
	stops.GET("", h.stopHandler.GetStops)
	stops.POST("", h.stopHandler.CreateStop)
	stops.PUT("", h.stopHandler.UpdateStop)
}
