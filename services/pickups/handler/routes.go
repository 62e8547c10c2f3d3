package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/middleware"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/pickups/handler/http"
)

// Handler coordinates the pickup service HTTP routes
type Handler struct {
	pickupHandler *http.PickupHandler
	cfg           *models.Config
}

// NewHandler creates and initializes the pickup handler
func NewHandler(pickupHandler *http.PickupHandler, cfg *models.Config) *Handler {
	return &Handler{
		pickupHandler: pickupHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the pickup routes. All operations are
// owner-scoped, so the whole group sits behind authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/pickups", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.GET("", h.pickupHandler.GetPickups)
	group.POST("", h.pickupHandler.CreatePickup)
	group.PUT("", h.pickupHandler.UpdatePickup)
	group.DELETE("", h.pickupHandler.DeletePickup)
}
