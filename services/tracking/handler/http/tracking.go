package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/tracking"
)

// TrackingHandler handles HTTP requests for collector position tracking
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

// GetCurrentLocation returns the most recent position for a collector
func (h *TrackingHandler) GetCurrentLocation(c echo.Context) error {
	collectorID := c.QueryParam("collector_id")
	if collectorID == "" {
		return utils.BadRequestResponse(c, "MISSING_COLLECTOR_ID", "collector_id parameter is required")
	}

	location, err := h.trackingUC.GetCurrentLocation(c.Request().Context(), collectorID)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, location)
}

// RecordLocation appends a position row stamped with the server clock
func (h *TrackingHandler) RecordLocation(c echo.Context) error {
	var req models.RecordLocationRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for location record", logger.Err(err))
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	location, err := h.trackingUC.RecordLocation(c.Request().Context(), &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Created(c, location)
}

// GetHistory lists position rows newest-first, optionally bounded by a
// time window and route
func (h *TrackingHandler) GetHistory(c echo.Context) error {
	collectorID := c.QueryParam("collector_id")
	if collectorID == "" {
		return utils.BadRequestResponse(c, "MISSING_COLLECTOR_ID", "collector_id query parameter is required")
	}

	filter := models.TrackingHistoryFilter{CollectorID: collectorID}

	if raw := c.QueryParam("start_time"); raw != "" {
		start, err := models.ParseTime(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "INVALID_START_TIME", "start_time must be a valid RFC3339 timestamp")
		}
		filter.StartTime = &start
	}
	if raw := c.QueryParam("end_time"); raw != "" {
		end, err := models.ParseTime(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "INVALID_END_TIME", "end_time must be a valid RFC3339 timestamp")
		}
		filter.EndTime = &end
	}
	if raw := c.QueryParam("route_id"); raw != "" {
		if routeID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.RouteID = &routeID
		}
	}

	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	locations, err := h.trackingUC.GetHistory(c.Request().Context(), filter)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, locations)
}

// DeleteLocation removes a position row by id
func (h *TrackingHandler) DeleteLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.Error(c, apperrors.BadRequest(apperrors.CodeInvalidID, "Valid location ID is required"))
	}

	location, err := h.trackingUC.DeleteLocation(c.Request().Context(), id)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Deleted(c, "Location record deleted successfully", location)
}
