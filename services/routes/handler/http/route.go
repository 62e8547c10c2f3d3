package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/routes"
)

// RouteHandler handles HTTP requests for route operations
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{routeUC: routeUC}
}

// GetRoutes handles both single-record lookup (?id=, with stops inlined)
// and filtered listing ordered newest-first
func (h *RouteHandler) GetRoutes(c echo.Context) error {
	if rawID := c.QueryParam("id"); rawID != "" {
		id, err := parseRouteID(rawID)
		if err != nil {
			return utils.Error(c, err)
		}

		route, err := h.routeUC.GetRoute(c.Request().Context(), id)
		if err != nil {
			return utils.Error(c, err)
		}
		return utils.JSON(c, nethttp.StatusOK, route)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.routeUC.ListRoutes(
		c.Request().Context(),
		c.QueryParam("status"),
		c.QueryParam("collector_id"),
		limit,
		offset,
	)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, result)
}

// CreateRoute handles route planning requests
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var req models.CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for route creation", logger.Err(err))
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	route, err := h.routeUC.CreateRoute(c.Request().Context(), &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Created(c, route)
}

// UpdateRoute handles partial route updates
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	id, err := parseRouteID(c.QueryParam("id"))
	if err != nil {
		return utils.Error(c, err)
	}

	var req models.UpdateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	route, err := h.routeUC.UpdateRoute(c.Request().Context(), id, &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, route)
}

// DeleteRoute handles route removal requests
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	id, err := parseRouteID(c.QueryParam("id"))
	if err != nil {
		return utils.Error(c, err)
	}

	route, err := h.routeUC.DeleteRoute(c.Request().Context(), id)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Deleted(c, "Route deleted successfully", route)
}

func parseRouteID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest(apperrors.CodeInvalidID, "Valid route ID is required")
	}
	return id, nil
}
