package agents

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/smarttransit-lk/agents-api/models"
)

// costPrefix is the currency prefix every seeded cost string carries. The
// cheapest sort requires the remainder to be digits only.
const costPrefix = "Rs. "

// RouteOptimizationAgent orders a fixed set of route options by the caller's
// mode preference. No options are created dynamically.
type RouteOptimizationAgent struct {
	name string
	base []models.RouteOption
}

// NewRouteOptimizationAgent creates the agent with the literal Colombo-Galle
// route options.
func NewRouteOptimizationAgent() *RouteOptimizationAgent {
	return &RouteOptimizationAgent{
		name: "Route Optimization Agent",
		base: []models.RouteOption{
			{
				Mode:     "Train + Bus",
				Duration: "2h 15m",
				Cost:     "Rs. 180",
				Steps: []string{
					"Walk to Fort Station (3min)",
					"Train to Galle (1h 50m)",
					"Walk to destination (5min)",
				},
				AccessibilityScore: 8,
			},
			{
				Mode:     "Express Bus",
				Duration: "2h 45m",
				Cost:     "Rs. 250",
				Steps: []string{
					"Walk to bus stop (2min)",
					"Express bus to Galle (2h 35m)",
					"Walk to destination (3min)",
				},
				AccessibilityScore: 6,
			},
		},
	}
}

// Name returns the agent's display name
func (a *RouteOptimizationAgent) Name() string {
	return a.name
}

// Optimize returns the route options ordered for the given mode preference.
// "cheapest" sorts ascending by the rupee amount parsed from the cost
// string. "fastest" sorts the free-text duration lexicographically, which
// agrees with actual travel time only while every duration shares the
// "Nh MMm" shape. Any other preference keeps the declaration order.
func (a *RouteOptimizationAgent) Optimize(preference string) []models.RouteOption {
	options := make([]models.RouteOption, len(a.base))
	copy(options, a.base)

	switch preference {
	case "cheapest":
		sort.SliceStable(options, func(i, j int) bool {
			return costRupees(options[i].Cost) < costRupees(options[j].Cost)
		})
	case "fastest":
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Duration < options[j].Duration
		})
	}

	return options
}

// costRupees parses the integer amount out of a "Rs. <integer>" cost string.
// Malformed costs sort after every well-formed one.
func costRupees(cost string) int {
	amount, err := strconv.Atoi(strings.TrimPrefix(cost, costPrefix))
	if err != nil {
		return math.MaxInt
	}
	return amount
}
