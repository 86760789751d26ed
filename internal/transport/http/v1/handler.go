// Package v1 provides HTTP handlers for the dialogue server.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/onair-app/onair-server/internal/domain"
	"github.com/onair-app/onair-server/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server. Call and chat share
// handlers; the modality is bound at registration.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session control
	e.POST("/api/call/start", h.StartSession(domain.ModalityCall))
	e.POST("/api/call/send", h.SendTurn)
	e.POST("/api/chat/start", h.StartSession(domain.ModalityChat))
	e.POST("/api/chat/send", h.SendTurn)

	// Archive and feedback
	e.GET("/api/logs", h.GetArchiveLog)
	e.GET("/api/feedback/:session_id", h.GetFeedback)

	// Provider credential and status
	e.POST("/api/key", h.SetKey)
	e.GET("/api/status", h.GetStatus)
	e.GET("/healthz", h.Health)

	// Speech synthesis
	e.POST("/api/tts", h.Synthesize)
}
