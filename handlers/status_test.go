package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smarttransit-lk/agents-api/agents"
	"github.com/smarttransit-lk/agents-api/models"
	"github.com/smarttransit-lk/agents-api/repository"
)

func newTestStatusHandler() *StatusHandler {
	return NewStatusHandler(
		agents.NewDataAggregationAgent("http://localhost:0", time.Second, &stubNetworkRepo{}, time.Minute),
		agents.NewRouteOptimizationAgent(),
		agents.NewPersonalizationAgent(repository.NewMemoryPreferenceStore()),
		agents.NewLanguageAgent(),
	)
}

func TestGetAgentsStatus(t *testing.T) {
	h := newTestStatusHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/agents/status", nil)
	rec := httptest.NewRecorder()
	h.GetAgentsStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var response models.AgentsStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.TotalAgents != 4 {
		t.Errorf("total_agents = %d, expected 4", response.TotalAgents)
	}
	if response.SystemHealth != "optimal" {
		t.Errorf("system_health = %q, expected optimal", response.SystemHealth)
	}

	expectedNames := []string{
		"Data Aggregation Agent",
		"Route Optimization Agent",
		"Personalization Agent",
		"Language & Accessibility Agent",
	}
	if len(response.Agents) != len(expectedNames) {
		t.Fatalf("got %d agents, expected %d", len(response.Agents), len(expectedNames))
	}
	for i, expected := range expectedNames {
		if response.Agents[i].Name != expected {
			t.Errorf("agent[%d].name = %q, expected %q", i, response.Agents[i].Name, expected)
		}
		if response.Agents[i].Status != "active" {
			t.Errorf("agent[%d].status = %q, expected active", i, response.Agents[i].Status)
		}
	}
}

func TestGetServiceBanner(t *testing.T) {
	h := newTestStatusHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.GetServiceBanner(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var banner models.ServiceBanner
	if err := json.Unmarshal(rec.Body.Bytes(), &banner); err != nil {
		t.Fatalf("failed to decode banner: %v", err)
	}

	if banner.Service != "Smart Transit AI Agents" {
		t.Errorf("service = %q", banner.Service)
	}
	if banner.Agents != 7 {
		t.Errorf("agents = %d, expected 7", banner.Agents)
	}
	if banner.Status != "active" {
		t.Errorf("status = %q, expected active", banner.Status)
	}
	if len(banner.Capabilities) != 4 {
		t.Errorf("got %d capabilities, expected 4", len(banner.Capabilities))
	}
}
