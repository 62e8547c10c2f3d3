package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/middleware"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/pickups"
)

// PickupHandler handles HTTP requests for pickup operations
type PickupHandler struct {
	pickupUC pickups.PickupUC
}

// NewPickupHandler creates a new pickup handler
func NewPickupHandler(pickupUC pickups.PickupUC) *PickupHandler {
	return &PickupHandler{pickupUC: pickupUC}
}

// GetPickups handles both single-record lookup (?id=) and filtered listing
func (h *PickupHandler) GetPickups(c echo.Context) error {
	callerID := middleware.CallerID(c)

	if rawID := c.QueryParam("id"); rawID != "" {
		id, err := parsePickupID(rawID)
		if err != nil {
			return utils.Error(c, err)
		}

		pickup, err := h.pickupUC.GetPickup(c.Request().Context(), callerID, id)
		if err != nil {
			return utils.Error(c, err)
		}
		return utils.JSON(c, nethttp.StatusOK, pickup)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.pickupUC.ListPickups(
		c.Request().Context(),
		callerID,
		c.QueryParam("status"),
		c.QueryParam("user_id"),
		c.QueryParam("collector_id"),
		limit,
		offset,
	)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, result)
}

// CreatePickup handles pickup scheduling requests
func (h *PickupHandler) CreatePickup(c echo.Context) error {
	var req models.CreatePickupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for pickup creation", logger.Err(err))
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	pickup, err := h.pickupUC.CreatePickup(c.Request().Context(), middleware.CallerID(c), &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Created(c, pickup)
}

// UpdatePickup handles partial pickup updates
func (h *PickupHandler) UpdatePickup(c echo.Context) error {
	id, err := parsePickupID(c.QueryParam("id"))
	if err != nil {
		return utils.Error(c, err)
	}

	var req models.UpdatePickupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	pickup, err := h.pickupUC.UpdatePickup(c.Request().Context(), middleware.CallerID(c), id, &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, pickup)
}

// DeletePickup handles pickup removal requests
func (h *PickupHandler) DeletePickup(c echo.Context) error {
	id, err := parsePickupID(c.QueryParam("id"))
	if err != nil {
		return utils.Error(c, err)
	}

	pickup, err := h.pickupUC.DeletePickup(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Deleted(c, "Pickup deleted successfully", pickup)
}

func parsePickupID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest(apperrors.CodeInvalidID, "Valid pickup ID is required")
	}
	return id, nil
}
