package handlers

import (
	"net/http"

	"github.com/smarttransit-lk/agents-api/models"
)

// Agent exposes the display name each agent component reports.
type Agent interface {
	Name() string
}

// StatusHandler serves the service banner and the agent status listing.
type StatusHandler struct {
	agents []Agent
}

// NewStatusHandler creates a new handler over the registered agents
func NewStatusHandler(registered ...Agent) *StatusHandler {
	return &StatusHandler{agents: registered}
}

// GetServiceBanner handles GET /
func (h *StatusHandler) GetServiceBanner(w http.ResponseWriter, r *http.Request) {
	banner := models.ServiceBanner{
		Service: "Smart Transit AI Agents",
		Agents:  7,
		Status:  "active",
		Capabilities: []string{
			"route_optimization",
			"personalization",
			"multilingual",
			"real_time",
		},
	}
	writeJSON(w, http.StatusOK, banner)
}

// GetAgentsStatus handles GET /api/agents/status
// Every registered agent is reported "active" unconditionally; the endpoint
// performs no health probing.
func (h *StatusHandler) GetAgentsStatus(w http.ResponseWriter, r *http.Request) {
	statuses := make([]models.AgentStatus, 0, len(h.agents))
	for _, a := range h.agents {
		statuses = append(statuses, models.AgentStatus{
			Name:   a.Name(),
			Status: "active",
		})
	}

	response := models.AgentsStatusResponse{
		Agents:       statuses,
		TotalAgents:  len(statuses),
		SystemHealth: "optimal",
	}
	writeJSON(w, http.StatusOK, response)
}
