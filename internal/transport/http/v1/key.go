package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/onair-app/onair-server/internal/domain"
)

// SetKey validates and installs new key material for the collaborator.
// POST /api/key
func (h *Handler) SetKey(c echo.Context) error {
	var req domain.KeyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false, "reason": "invalid request body"})
	}

	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false, "reason": "empty key"})
	}

	model, err := h.service.SetKey(c.Request().Context(), key)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false, "reason": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":       true,
		"provider": "gemini",
		"model":    model,
	})
}

// GetStatus reports collaborator availability for the status panel.
// GET /api/status
func (h *Handler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Status())
}

// Health returns health status.
// GET /healthz
func (h *Handler) Health(c echo.Context) error {
	st := h.service.Status()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":         true,
		"provider":   st.Provider,
		"model":      st.Model,
		"gemini_set": st.GeminiSet,
	})
}
