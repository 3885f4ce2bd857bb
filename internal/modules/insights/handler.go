package insights

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// Handler handles HTTP requests for journal insights.
type Handler struct {
	service InsightService
}

// NewHandler creates a new insights handler with the given service.
func NewHandler(service InsightService) *Handler {
	return &Handler{service: service}
}

// Moods processes GET /api/insights/moods?range=&mood=.
func (h *Handler) Moods(c echo.Context) error {
	stats, err := h.service.Moods(c.Request().Context(),
		auth.GetUserID(c),
		ParseWindow(c.QueryParam("range")),
		c.QueryParam("mood"),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Trend processes GET /api/insights/trend?range=.
func (h *Handler) Trend(c echo.Context) error {
	points, err := h.service.Trend(c.Request().Context(),
		auth.GetUserID(c),
		ParseWindow(c.QueryParam("range")),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"points": points})
}

// Words processes GET /api/insights/words?range=.
func (h *Handler) Words(c echo.Context) error {
	words, err := h.service.Words(c.Request().Context(),
		auth.GetUserID(c),
		ParseWindow(c.QueryParam("range")),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"words": words})
}
