package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/smarttransit-lk/agents-api/models"
)

// StatusBackendOffline is substituted whenever the backend health probe
// fails for any reason.
const StatusBackendOffline = "backend_offline"

const networkCacheKey = "route_network"

// RouteNetworkRepository is the read side of the seeded route-network table.
type RouteNetworkRepository interface {
	GetAllRoutes(ctx context.Context) ([]models.RouteNetworkEntry, error)
}

// BackendStatus is the outcome of one backend health probe. Probe failures
// never surface as errors; they collapse into the offline fallback with the
// cache hint set.
type BackendStatus struct {
	Status     string `json:"status"`
	UsingCache bool   `json:"using_cache,omitempty"`
}

// DataAggregationAgent checks the backend transit API and serves the seeded
// route network. Network rows are cached with a TTL so the table is not
// queried on every plan request.
type DataAggregationAgent struct {
	name       string
	backendURL string
	client     *http.Client
	repo       RouteNetworkRepository
	cache      *cache.Cache
}

// NewDataAggregationAgent creates the agent with a bounded-timeout HTTP
// client for the backend probe.
func NewDataAggregationAgent(backendURL string, timeout time.Duration, repo RouteNetworkRepository, cacheTTL time.Duration) *DataAggregationAgent {
	return &DataAggregationAgent{
		name:       "Data Aggregation Agent",
		backendURL: backendURL,
		client: &http.Client{
			Timeout: timeout,
		},
		repo:  repo,
		cache: cache.New(cacheTTL, 2*cacheTTL),
	}
}

// Name returns the agent's display name
func (a *DataAggregationAgent) Name() string {
	return a.name
}

// CheckBackend probes the backend health endpoint once. A 200 with a JSON
// body yields that body's status string (empty when the body carries no
// status field: the backend was reachable, so the offline fallback does not
// apply); everything else (dial failure, timeout, non-200, malformed body)
// yields the offline fallback. The probe never returns an error.
func (a *DataAggregationAgent) CheckBackend(ctx context.Context) BackendStatus {
	offline := BackendStatus{Status: StatusBackendOffline, UsingCache: true}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.backendURL, nil)
	if err != nil {
		return offline
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return offline
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return offline
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return offline
	}

	return BackendStatus{Status: body.Status}
}

// RouteNetwork returns the seeded route network. Results are cached for the
// configured TTL; repository reads within that window are served from the
// cache.
func (a *DataAggregationAgent) RouteNetwork(ctx context.Context) (models.RouteNetwork, error) {
	if cached, found := a.cache.Get(networkCacheKey); found {
		if network, ok := cached.(models.RouteNetwork); ok {
			return network, nil
		}
	}

	routes, err := a.repo.GetAllRoutes(ctx)
	if err != nil {
		return models.RouteNetwork{}, fmt.Errorf("failed to load route network: %w", err)
	}

	network := models.RouteNetwork{
		Routes:         routes,
		RealTimeStatus: "active",
	}
	a.cache.Set(networkCacheKey, network, cache.DefaultExpiration)

	return network, nil
}
