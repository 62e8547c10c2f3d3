package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/routes"
)

// RouteStopHandler handles HTTP requests for route stop operations
type RouteStopHandler struct {
	routeUC routes.RouteUC
}

// NewRouteStopHandler creates a new route stop handler
func NewRouteStopHandler(routeUC routes.RouteUC) *RouteStopHandler {
	return &RouteStopHandler{routeUC: routeUC}
}

// GetStops lists the stops of a route in traversal order
func (h *RouteStopHandler) GetStops(c echo.Context) error {
	rawRouteID := c.QueryParam("route_id")
	if rawRouteID == "" {
		return utils.BadRequestResponse(c, "MISSING_ROUTE_ID", "Route ID is required")
	}

	routeID, err := strconv.ParseInt(rawRouteID, 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "INVALID_ROUTE_ID", "Valid route ID is required")
	}

	stops, err := h.routeUC.ListStops(c.Request().Context(), routeID)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, stops)
}

// CreateStop handles stop creation requests
func (h *RouteStopHandler) CreateStop(c echo.Context) error {
	var req models.CreateRouteStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	stop, err := h.routeUC.CreateStop(c.Request().Context(), &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Created(c, stop)
}

// UpdateStop handles partial stop updates
func (h *RouteStopHandler) UpdateStop(c echo.Context) error {
	rawID := c.QueryParam("id")
	if rawID == "" {
		return utils.BadRequestResponse(c, "MISSING_STOP_ID", "Stop ID is required")
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "INVALID_STOP_ID", "Valid stop ID is required")
	}

	var req models.UpdateRouteStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	stop, err := h.routeUC.UpdateStop(c.Request().Context(), id, &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, stop)
}
