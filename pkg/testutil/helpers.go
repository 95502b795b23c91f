// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/analysis"
)

// FindScenario finds a scenario by name in an analysis result.
// Returns a pointer to the scenario result if found, nil otherwise.
func FindScenario(result *analysis.Result, name string) *analysis.ScenarioResult {
	for i := range result.Scenarios {
		if result.Scenarios[i].Name == name {
			return &result.Scenarios[i]
		}
	}
	return nil
}

// FindTarget finds a target by name in an analysis result.
// Returns a pointer to the target result if found, nil otherwise.
func FindTarget(result *analysis.Result, name string) *analysis.TargetResult {
	for i := range result.Targets {
		if result.Targets[i].Name == name {
			return &result.Targets[i]
		}
	}
	return nil
}
