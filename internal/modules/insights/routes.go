package insights

import (
	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// RegisterRoutes sets up the insight routes. Everything requires a session.
func RegisterRoutes(e *echo.Echo, h *Handler, authService auth.AuthService) {
	g := e.Group("/api/insights", auth.RequireAuth(authService))

	g.GET("/moods", h.Moods)
	g.GET("/trend", h.Trend)
	g.GET("/words", h.Words)
}
