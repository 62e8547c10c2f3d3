package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/greencycle/greencycle/internal/pkg/jwt"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
)

// JWTAuthMiddleware resolves the caller identity from a Bearer token. Every
// owner-scoped operation downstream reads user_id from the echo context; on
// failure the request short-circuits with a 401.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			userIDStr := fmt.Sprintf("%v", userID)
			if userIDStr == "" || userIDStr == "<nil>" {
				return utils.UnauthorizedResponse(c, "Invalid token: empty user_id claim")
			}

			c.Set("user_id", userIDStr)
			if role, ok := claims["role"]; ok {
				c.Set("user_role", fmt.Sprintf("%v", role))
			}

			return next(c)
		}
	}
}

// CallerID returns the authenticated user id stored by JWTAuthMiddleware
func CallerID(c echo.Context) string {
	if uid, ok := c.Get("user_id").(string); ok {
		return uid
	}
	return ""
}
