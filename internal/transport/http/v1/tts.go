package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onair-app/onair-server/internal/domain"
)

// Synthesize returns base64-encoded MP3 audio for the given text.
// POST /api/tts
func (h *Handler) Synthesize(c echo.Context) error {
	var req domain.TTSRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text required"})
	}

	b64, err := h.service.Synthesize(c.Request().Context(), req.Text)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"mp3_base64": b64})
}
