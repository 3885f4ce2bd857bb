package export

import (
	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// RegisterRoutes sets up the export/import routes. Both require a session.
func RegisterRoutes(e *echo.Echo, h *Handler, authService auth.AuthService) {
	e.GET("/api/export", h.Export, auth.RequireAuth(authService))
	e.POST("/api/import", h.Import, auth.RequireAuth(authService))
}
