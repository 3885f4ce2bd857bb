package entries

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// Handler handles HTTP requests for journal entries.
type Handler struct {
	service EntryService
}

// NewHandler creates a new entries handler with the given service.
func NewHandler(service EntryService) *Handler {
	return &Handler{service: service}
}

// Create processes POST /api/entries. The entry's owner is always the
// authenticated session's user -- a userId in the body is ignored.
func (h *Handler) Create(c echo.Context) error {
	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	entry, err := h.service.AddEntry(c.Request().Context(), auth.GetUserID(c), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"entry": entry})
}

// List processes GET /api/entries.
func (h *Handler) List(c echo.Context) error {
	entries, err := h.service.ListEntries(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"entries": entries})
}
