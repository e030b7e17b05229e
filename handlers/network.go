package handlers

import (
	"context"
	"net/http"
	"time"
)

// NetworkHandler serves the seeded route network.
type NetworkHandler struct {
	aggregator Aggregator
}

// NewNetworkHandler creates a new handler over the aggregation agent
func NewNetworkHandler(aggregator Aggregator) *NetworkHandler {
	return &NetworkHandler{aggregator: aggregator}
}

// GetRouteNetwork handles GET /api/network
func (h *NetworkHandler) GetRouteNetwork(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	network, err := h.aggregator.RouteNetwork(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to load route network",
			Details: map[string]interface{}{
				"internal": err.Error(),
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, network)
}
