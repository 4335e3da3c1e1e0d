package commands

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// WorkflowOptions holds runtime options shared by every workflow.
type WorkflowOptions struct {
	ProjectDir    string
	Manager       string // if set, skips detection and the manager decision
	DetectManager bool   // pick the manager from the lockfile present in ProjectDir
	DryRun        bool
	Verbose       bool
	ReportPath    string // if set, the run summary is written there
	Decider       repositories.DecisionRepository
}

// saveReport writes the run summary when a report path is configured.
// A failed write is logged and never fails the workflow.
func saveReport(
	reports repositories.ReportRepository,
	clock entities.Clock,
	opts WorkflowOptions,
	workflow entities.Workflow,
	manager string,
	results []entities.SummaryResult,
) {
	if opts.ReportPath == "" {
		return
	}
	summary := entities.NewRunSummary(workflow, manager, clock(), results)
	logger.Infof("%s: %d/%d succeeded (%s)",
		workflow, summary.SuccessfulTests, summary.TotalTests, summary.SuccessRate)
	if err := reports.Save(opts.ReportPath, summary); err != nil {
		logger.Errorf("Failed to save report: %v", err)
	}
}

func missingCheck(name string, diff entities.DiffResult) entities.SummaryResult {
	result := entities.SummaryResult{
		Name:    name,
		Outcome: "passed",
		Success: !diff.HasMissing(),
	}
	if diff.HasMissing() {
		result.Outcome = "failed"
		result.Detail = "missing: " + strings.Join(diff.Missing, ", ")
	}
	return result
}
