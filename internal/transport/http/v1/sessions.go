package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/onair-app/onair-server/internal/domain"
)

// StartSession starts a new training session for the given modality.
// POST /api/call/start, POST /api/chat/start
func (h *Handler) StartSession(modality domain.Modality) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.StartRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		resp := h.service.Start(c.Request().Context(), &req, modality)
		return c.JSON(http.StatusOK, resp)
	}
}

// SendTurn submits one trainee turn.
// POST /api/call/send, POST /api/chat/send
func (h *Handler) SendTurn(c echo.Context) error {
	var req domain.SendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.service.Submit(c.Request().Context(), req.SessionID, strings.TrimSpace(req.Text))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		if errors.Is(err, domain.ErrSessionEnded) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "session ended"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, domain.SendResponse{
		Reply:  result.Reply,
		Rounds: result.Rounds,
		Ended:  result.Ended,
	})
}

// GetArchiveLog returns completed-session snapshots, most recent first.
// GET /api/logs
func (h *Handler) GetArchiveLog(c echo.Context) error {
	entries, err := h.service.ArchiveLog(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load archive log"})
	}
	return c.JSON(http.StatusOK, entries)
}
