package repository

import (
	"strings"

	"github.com/smarttransit-lk/agents-api/models"
)

// seedRoutes returns the literal Sri Lankan route-network rows loaded at
// startup. The table is read-only after seeding.
func seedRoutes() []models.RouteNetworkEntry {
	return []models.RouteNetworkEntry{
		{ID: 1, Name: "Colombo-Galle", Modes: []string{"train", "bus"}, Distance: 119},
		{ID: 2, Name: "Colombo-Kandy", Modes: []string{"train", "bus"}, Distance: 115},
		{ID: 3, Name: "Colombo-Negombo", Modes: []string{"bus"}, Distance: 37},
	}
}

// Modes are stored as a comma-separated string; none of the mode names
// contain commas.
func joinModes(modes []string) string {
	return strings.Join(modes, ",")
}

func splitModes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
