package notifications

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// Handler handles HTTP requests for notification preferences and dispatch.
type Handler struct {
	service        NotificationService
	cronConfigured bool
}

// NewHandler creates a new notifications handler with the given service.
// cronConfigured reports whether the batch dispatch endpoints are reachable.
func NewHandler(service NotificationService, cronConfigured bool) *Handler {
	return &Handler{service: service, cronConfigured: cronConfigured}
}

// GetPreferences processes GET /api/notifications/preferences.
func (h *Handler) GetPreferences(c echo.Context) error {
	prefs, err := h.service.GetPreferences(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences processes PUT /api/notifications/preferences.
func (h *Handler) UpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	prefs, err := h.service.UpdatePreferences(c.Request().Context(), auth.GetUserID(c), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prefs)
}

// RegisterToken processes POST /api/notifications/token.
func (h *Handler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	prefs, err := h.service.RegisterToken(c.Request().Context(), auth.GetUserID(c), req.Token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prefs)
}

// DailyReminder processes GET /api/notifications/daily-reminder, the
// cron-triggered batch dispatch.
func (h *Handler) DailyReminder(c echo.Context) error {
	result, err := h.service.SendDailyReminders(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Schedule processes GET /api/notifications/schedule.
func (h *Handler) Schedule(c echo.Context) error {
	targets, err := h.service.Schedule(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"targets": targets})
}

// Health processes GET /api/notifications/health. It is unauthenticated
// and reports only configuration booleans.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"sender_configured": h.service.SenderConfigured(),
		"cron_configured":   h.cronConfigured,
	})
}
