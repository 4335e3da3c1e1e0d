package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

// WorkflowController handles the root command: it asks which workflow to run,
// unless --fix goes straight to the clean workflow.
type WorkflowController struct {
	scan    *ScanController
	analyze *AnalyzeController
	clean   *CleanController
	prompt  *decision.SurveyDecisionRepository
}

// NewWorkflowController creates a new WorkflowController.
func NewWorkflowController(
	scan *ScanController,
	analyze *AnalyzeController,
	clean *CleanController,
	prompt *decision.SurveyDecisionRepository,
) *WorkflowController {
	return &WorkflowController{scan: scan, analyze: analyze, clean: clean, prompt: prompt}
}

// GetBind returns the Cobra command metadata for the root command.
func (it *WorkflowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "depdoctor [path]",
		Short: "Reconcile package.json with the installed dependencies",
		Long: `Find and fix drift between package.json and node_modules: missing installs,
outdated versions and known vulnerabilities. Works with npm, yarn and pnpm.

Usage modes:
  depdoctor               Ask which workflow to run on the current directory
  depdoctor --fix         Reinstall everything without asking
  depdoctor scan [path]   Check if there is any dependency missing
  depdoctor analyze       Search for outdated and vulnerable dependencies
  depdoctor clean         Delete node_modules and the lockfile, then reinstall`,
	}
}

// Execute asks for the workflow and dispatches it.
func (it *WorkflowController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	opts, err := buildWorkflowOptions(cmd, args, it.prompt)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return
	}

	workflow := entities.WorkflowClean
	if fix, _ := cmd.Flags().GetBool("fix"); !fix {
		workflow, err = opts.Decider.SelectWorkflow(ctx)
		if err != nil {
			logger.Errorf("No workflow selected: %v", err)
			return
		}
	}

	switch workflow {
	case entities.WorkflowScan:
		it.scan.run(ctx, opts)
	case entities.WorkflowAnalyze:
		it.analyze.run(ctx, opts)
	case entities.WorkflowClean:
		it.clean.run(ctx, opts)
	default:
		logger.Errorf("Unknown workflow %q", workflow)
	}
}

// AddFlags adds --fix and the answers to the analyze decisions.
func (it *WorkflowController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fix", false, "Delete node_modules and the lockfile, then reinstall without asking")
	AddAnswerFlags(cmd)
}
