package entries

import (
	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// RegisterRoutes sets up the entry routes. Everything requires a session.
func RegisterRoutes(e *echo.Echo, h *Handler, authService auth.AuthService) {
	g := e.Group("/api/entries", auth.RequireAuth(authService))

	g.POST("", h.Create)
	g.GET("", h.List)
}
