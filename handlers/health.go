package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/smarttransit-lk/agents-api/agents"
)

// HealthHandler reports route-store connectivity.
type HealthHandler struct {
	repo agents.RouteNetworkRepository
}

// NewHealthHandler creates a new handler over the route-network repository
func NewHealthHandler(repo agents.RouteNetworkRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// GetHealth handles GET /health
// Tests store connectivity with a bounded read; a failing store yields 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.repo.GetAllRoutes(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": time.Now().UTC(),
			"error":     err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC(),
	})
}
