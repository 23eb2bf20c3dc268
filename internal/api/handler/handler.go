// Package handler provides HTTP handlers for all API endpoints.
// Handlers query sqlite directly through the store — no service layer.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/squadtrack/squadtrack/internal/api/respond"
	"github.com/squadtrack/squadtrack/internal/config"
	"github.com/squadtrack/squadtrack/internal/db"
	"github.com/squadtrack/squadtrack/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	db     *db.DB
	store  *store.Store
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(database *db.DB, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		db:     database,
		store:  store.New(database.DB),
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Squadtrack API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies store connectivity.
// @Summary Database health check
// @Description Verifies the sqlite store is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
