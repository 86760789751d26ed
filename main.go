package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/onair-app/onair-server/internal/adapter/llm"
	"github.com/onair-app/onair-server/internal/adapter/tts"
	"github.com/onair-app/onair-server/internal/config"
	store "github.com/onair-app/onair-server/internal/repository"
	"github.com/onair-app/onair-server/internal/service"
	v1 "github.com/onair-app/onair-server/internal/transport/http/v1"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting onair server...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Gemini Model: %s", cfg.GeminiModel)

	// Initialize archive store
	archive, err := store.NewSQLiteArchive(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize archive store: %v", err)
	}
	defer archive.Close()

	// Initialize session store
	sessions := store.NewMemorySessionStore()

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.GeminiModel, cfg.LLMTimeout)

	// Initialize TTS client
	synth := tts.NewGoogleClient("ko")

	// Initialize service
	svc := service.New(sessions, archive, llmClient, synth, cfg)

	// Initialize handler
	h := v1.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Server stopped")
}
