package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smarttransit-lk/agents-api/models"
)

func TestGetRouteNetwork(t *testing.T) {
	h := NewNetworkHandler(&stubAggregator{
		network: models.RouteNetwork{
			Routes: []models.RouteNetworkEntry{
				{ID: 1, Name: "Colombo-Galle", Modes: []string{"train", "bus"}, Distance: 119},
				{ID: 3, Name: "Colombo-Negombo", Modes: []string{"bus"}, Distance: 37},
			},
			RealTimeStatus: "active",
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/network", nil)
	rec := httptest.NewRecorder()
	h.GetRouteNetwork(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var network models.RouteNetwork
	if err := json.Unmarshal(rec.Body.Bytes(), &network); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if network.RealTimeStatus != "active" {
		t.Errorf("real_time_status = %q, expected active", network.RealTimeStatus)
	}
	if len(network.Routes) != 2 {
		t.Errorf("got %d routes, expected 2", len(network.Routes))
	}
}

func TestGetRouteNetworkError(t *testing.T) {
	h := NewNetworkHandler(&stubAggregator{networkErr: errors.New("store down")})

	req := httptest.NewRequest(http.MethodGet, "/api/network", nil)
	rec := httptest.NewRecorder()
	h.GetRouteNetwork(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, expected 500", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error == "" {
		t.Error("error body missing message")
	}
}
