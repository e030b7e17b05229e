package models

// AgentStatus is one entry of the agent status listing.
type AgentStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AgentsStatusResponse is the JSON response for GET /api/agents/status.
// Statuses are literal: the endpoint performs no probing.
type AgentsStatusResponse struct {
	Agents       []AgentStatus `json:"agents"`
	TotalAgents  int           `json:"total_agents"`
	SystemHealth string        `json:"system_health"`
}

// ServiceBanner is the JSON response for GET /.
type ServiceBanner struct {
	Service      string   `json:"service"`
	Agents       int      `json:"agents"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}
