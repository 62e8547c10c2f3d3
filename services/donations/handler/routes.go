package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/middleware"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/donations/handler/http"
)

// Handler coordinates the donation service HTTP routes
type Handler struct {
	donationHandler *http.DonationHandler
	cfg             *models.Config
}

// NewHandler creates and initializes the donation handler
func NewHandler(donationHandler *http.DonationHandler, cfg *models.Config) *Handler {
	return &Handler{
		donationHandler: donationHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the donation routes behind authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/donations", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.GET("", h.donationHandler.GetDonations)
	group.POST("", h.donationHandler.CreateDonation)
	group.PUT("", h.donationHandler.UpdateDonation)
	group.DELETE("", h.donationHandler.DeleteDonation)
}
