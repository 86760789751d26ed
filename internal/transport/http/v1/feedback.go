package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onair-app/onair-server/internal/domain"
)

// GetFeedback evaluates a session transcript. An override key may be
// supplied via the X-API-Key header.
// GET /api/feedback/:session_id
func (h *Handler) GetFeedback(c echo.Context) error {
	sessionID := c.Param("session_id")
	overrideKey := c.Request().Header.Get("X-API-Key")

	fb, err := h.service.Feedback(c.Request().Context(), sessionID, overrideKey)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		if errors.Is(err, domain.ErrEmptyTranscript) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "transcript is empty"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":       true,
		"feedback": fb.Text,
		"score":    fb.Score,
	})
}
