package export

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/modules/auth"
)

// Handler handles HTTP requests for export and import.
type Handler struct {
	service ExportService
}

// NewHandler creates a new export handler with the given service.
func NewHandler(service ExportService) *Handler {
	return &Handler{service: service}
}

// Export processes GET /api/export and offers the envelope as a download.
func (h *Handler) Export(c echo.Context) error {
	env, err := h.service.Export(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="lifelog-export.json"`)
	return c.JSON(http.StatusOK, env)
}

// Import processes POST /api/import.
func (h *Handler) Import(c echo.Context) error {
	var env Envelope
	if err := c.Bind(&env); err != nil {
		return apperror.NewBadRequest("invalid export file")
	}

	result, err := h.service.Import(c.Request().Context(), auth.GetUserID(c), &env)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
