package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunSummary is the machine-readable record of one workflow run. Field names
// and the "NN.N%" success rate format are kept stable for existing tooling.
type RunSummary struct {
	ID              string          `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	Workflow        Workflow        `json:"workflow"`
	Manager         string          `json:"manager"`
	TotalTests      int             `json:"totalTests"`
	SuccessfulTests int             `json:"successfulTests"`
	FailedTests     int             `json:"failedTests"`
	SuccessRate     string          `json:"successRate"`
	Results         []SummaryResult `json:"results"`
}

// SummaryResult is one counted item of a run: a dispatched remediation action
// or a post-condition check.
type SummaryResult struct {
	Name    string `json:"name"`
	Command string `json:"command,omitempty"`
	Outcome string `json:"outcome"`
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}

// ActionResults converts dispatched actions to summary results. Skipped and
// pending actions were never executed and are not counted.
func ActionResults(actions []RemediationAction) []SummaryResult {
	results := make([]SummaryResult, 0, len(actions))
	for _, action := range actions {
		if action.Outcome != OutcomeApplied && action.Outcome != OutcomeFailed {
			continue
		}
		results = append(results, SummaryResult{
			Name:    action.Name,
			Command: action.Command,
			Outcome: string(action.Outcome),
			Success: action.Outcome == OutcomeApplied,
			Detail:  action.Detail,
		})
	}
	return results
}

// NewRunSummary aggregates the results of a run.
func NewRunSummary(workflow Workflow, manager string, now time.Time, results []SummaryResult) RunSummary {
	successful := 0
	for _, result := range results {
		if result.Success {
			successful++
		}
	}
	if results == nil {
		results = []SummaryResult{}
	}
	return RunSummary{
		ID:              uuid.NewString(),
		Timestamp:       now.UTC(),
		Workflow:        workflow,
		Manager:         manager,
		TotalTests:      len(results),
		SuccessfulTests: successful,
		FailedTests:     len(results) - successful,
		SuccessRate:     FormatSuccessRate(successful, len(results)),
		Results:         results,
	}
}

// FormatSuccessRate renders successful/total as a percentage with one decimal.
func FormatSuccessRate(successful, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(successful)/float64(total)*100) //nolint:mnd // percentage
}
