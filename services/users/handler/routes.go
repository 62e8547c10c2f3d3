package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/middleware"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/users/handler/http"
)

// Handler coordinates the user service HTTP routes
type Handler struct {
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the user handler
func NewHandler(userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers auth and profile routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.userHandler.Register)
	authGroup.POST("/login", h.userHandler.Login)

	protected := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/:id", h.userHandler.GetUser)
}
