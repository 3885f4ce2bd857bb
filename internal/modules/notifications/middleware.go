package notifications

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

// RequireCronSecret guards the batch dispatch endpoints with a static
// bearer secret shared with the external scheduler. The comparison is
// constant-time; an empty configured secret closes the endpoints entirely.
func RequireCronSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return apperror.NewForbidden("reminder dispatch is not configured")
			}

			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return apperror.NewUnauthorized("missing bearer token")
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				return apperror.NewUnauthorized("invalid bearer token")
			}

			return next(c)
		}
	}
}
