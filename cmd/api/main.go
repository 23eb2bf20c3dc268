// Command api is the Squadtrack roster API server.
//
// Usage:
//
//	squadtrack-api
//	API_PORT=8080 squadtrack-api

// @title Squadtrack API
// @version 1.0.0
// @description Persistence service for a sports-management game's player roster and weekly performance snapshots.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/squadtrack/squadtrack/internal/api"
	"github.com/squadtrack/squadtrack/internal/config"
	"github.com/squadtrack/squadtrack/internal/db"
	"github.com/squadtrack/squadtrack/internal/schema"

	_ "github.com/squadtrack/squadtrack/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Open the store file
	logger.Info("Opening database", "path", cfg.DatabasePath)
	database, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Migrations run here, before the router binds. A failure is fatal;
	// the tables must exist before any request is accepted.
	if err := schema.Apply(ctx, database.DB); err != nil {
		logger.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}
	logger.Info("Schema ready")

	// Create router
	router := api.NewRouter(database, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Squadtrack API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
