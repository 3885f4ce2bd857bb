package notifications

import (
	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// RegisterRoutes sets up the notification routes. Preference routes need a
// session; the batch dispatch routes are guarded by the cron secret
// instead, since the scheduler is a machine, not a signed-in user.
func RegisterRoutes(e *echo.Echo, h *Handler, authService auth.AuthService, cronSecret string) {
	g := e.Group("/api/notifications")

	authed := g.Group("", auth.RequireAuth(authService))
	authed.GET("/preferences", h.GetPreferences)
	authed.PUT("/preferences", h.UpdatePreferences)
	authed.POST("/token", h.RegisterToken)

	cron := g.Group("", RequireCronSecret(cronSecret))
	cron.GET("/daily-reminder", h.DailyReminder)
	cron.GET("/schedule", h.Schedule)

	g.GET("/health", h.Health)
}
