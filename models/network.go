package models

// RouteNetworkEntry is one row of the seeded route-network table.
// Distance is kilometres.
type RouteNetworkEntry struct {
	ID       int      `db:"id" json:"id"`
	Name     string   `db:"name" json:"name"`
	Modes    []string `json:"modes"`
	Distance float64  `db:"distance_km" json:"distance"`
}

// RouteNetwork is the aggregated network payload returned by the data
// aggregation agent and GET /api/network.
type RouteNetwork struct {
	Routes         []RouteNetworkEntry `json:"routes"`
	RealTimeStatus string              `json:"real_time_status"`
}
