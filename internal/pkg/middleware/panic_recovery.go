package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and converts the failure to the standard 500 envelope instead of
// leaking a trace to the client
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()

					userID := "anonymous"
					if uid := c.Get("user_id"); uid != nil {
						userID = fmt.Sprintf("%v", uid)
					}

					zapLogger.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("stack_trace", string(stack)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("user_id", userID),
					)

					if !c.Response().Committed {
						_ = utils.ErrorResponse(c, http.StatusInternalServerError,
							apperrors.CodeInternal, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
