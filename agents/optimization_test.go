package agents

import (
	"math"
	"testing"
)

func TestOptimizeCheapest(t *testing.T) {
	agent := NewRouteOptimizationAgent()

	options := agent.Optimize("cheapest")
	if len(options) != 2 {
		t.Fatalf("Optimize returned %d options, expected 2", len(options))
	}

	if options[0].Mode != "Train + Bus" || options[1].Mode != "Express Bus" {
		t.Errorf("cheapest order = [%s, %s], expected [Train + Bus, Express Bus]",
			options[0].Mode, options[1].Mode)
	}

	if costRupees(options[0].Cost) > costRupees(options[1].Cost) {
		t.Errorf("costs not ascending: %s before %s", options[0].Cost, options[1].Cost)
	}
}

func TestOptimizeFastest(t *testing.T) {
	agent := NewRouteOptimizationAgent()

	options := agent.Optimize("fastest")
	if len(options) != 2 {
		t.Fatalf("Optimize returned %d options, expected 2", len(options))
	}

	// Lexicographic ordering of the duration strings: "2h 15m" < "2h 45m"
	if options[0].Duration != "2h 15m" || options[1].Duration != "2h 45m" {
		t.Errorf("fastest order = [%s, %s], expected [2h 15m, 2h 45m]",
			options[0].Duration, options[1].Duration)
	}
	if options[0].Mode != "Train + Bus" {
		t.Errorf("fastest first option = %s, expected Train + Bus", options[0].Mode)
	}
}

func TestOptimizeUnknownPreference(t *testing.T) {
	agent := NewRouteOptimizationAgent()

	// Anything outside cheapest/fastest keeps the declaration order
	for _, preference := range []string{"scenic", "comfort", "Cheapest", ""} {
		t.Run(preference, func(t *testing.T) {
			options := agent.Optimize(preference)
			if len(options) != 2 {
				t.Fatalf("Optimize returned %d options, expected 2", len(options))
			}
			if options[0].Mode != "Train + Bus" || options[1].Mode != "Express Bus" {
				t.Errorf("order = [%s, %s], expected declaration order [Train + Bus, Express Bus]",
					options[0].Mode, options[1].Mode)
			}
		})
	}
}

func TestOptimizeDoesNotMutateBase(t *testing.T) {
	agent := NewRouteOptimizationAgent()

	first := agent.Optimize("cheapest")
	first[0], first[1] = first[1], first[0]

	again := agent.Optimize("anything")
	if again[0].Mode != "Train + Bus" {
		t.Errorf("base options mutated: first option now %s", again[0].Mode)
	}
}

func TestCostRupees(t *testing.T) {
	tests := []struct {
		cost     string
		expected int
	}{
		{"Rs. 180", 180},
		{"Rs. 250", 250},
		{"Rs. 0", 0},
		{"180", 180},
		{"Rs. 12a", math.MaxInt},
		{"LKR 100", math.MaxInt},
		{"", math.MaxInt},
	}

	for _, tc := range tests {
		t.Run(tc.cost, func(t *testing.T) {
			result := costRupees(tc.cost)
			if result != tc.expected {
				t.Errorf("costRupees(%q) = %d, expected %d", tc.cost, result, tc.expected)
			}
		})
	}
}
