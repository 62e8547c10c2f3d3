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
	"github.com/greencycle/greencycle/services/donations"
)

// DonationHandler handles HTTP requests for donation operations
type DonationHandler struct {
	donationUC donations.DonationUC
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationUC donations.DonationUC) *DonationHandler {
	return &DonationHandler{donationUC: donationUC}
}

// GetDonations handles both single-record lookup (?id=) and filtered listing
func (h *DonationHandler) GetDonations(c echo.Context) error {
	callerID := middleware.CallerID(c)

	if rawID := c.QueryParam("id"); rawID != "" {
		id, err := parseDonationID(rawID)
		if err != nil {
			return utils.Error(c, err)
		}

		donation, err := h.donationUC.GetDonation(c.Request().Context(), callerID, id)
		if err != nil {
			return utils.Error(c, err)
		}
		return utils.JSON(c, nethttp.StatusOK, donation)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.donationUC.ListDonations(
		c.Request().Context(),
		callerID,
		c.QueryParam("status"),
		c.QueryParam("user_id"),
		c.QueryParam("ngo_id"),
		limit,
		offset,
	)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, result)
}

// CreateDonation handles donation offer requests
func (h *DonationHandler) CreateDonation(c echo.Context) error {
	var req models.CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for donation creation", logger.Err(err))
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	donation, err := h.donationUC.CreateDonation(c.Request().Context(), middleware.CallerID(c), &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Created(c, donation)
}

// UpdateDonation handles partial donation updates
func (h *DonationHandler) UpdateDonation(c echo.Context) error {
	id, err := parseDonationID(c.QueryParam("id"))
	if err != nil {
		return utils.Error(c, err)
	}

	var req models.UpdateDonationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "INVALID_BODY", "Invalid request payload")
	}

	donation, err := h.donationUC.UpdateDonation(c.Request().Context(), middleware.CallerID(c), id, &req)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.JSON(c, nethttp.StatusOK, donation)
}

// DeleteDonation handles donation removal requests
func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	id, err := parseDonationID(c.QueryParam("id"))
	if err != nil {
		return utils.Error(c, err)
	}

	donation, err := h.donationUC.DeleteDonation(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return utils.Error(c, err)
	}

	return utils.Deleted(c, "Donation deleted successfully", donation)
}

func parseDonationID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest(apperrors.CodeInvalidID, "Valid donation ID is required")
	}
	return id, nil
}
