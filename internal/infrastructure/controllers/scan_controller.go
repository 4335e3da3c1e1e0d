package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.Scan
	prompt  *decision.SurveyDecisionRepository
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan, prompt *decision.SurveyDecisionRepository) *ScanController {
	return &ScanController{command: command, prompt: prompt}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [path]",
		Short: "Check if there is any dependency missing",
		Long: `Compare the dependencies declared in package.json with the installed ones.
When something is missing, node_modules and the lockfile are deleted and
everything is reinstalled.`,
	}
}

// Execute runs the scan workflow.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) {
	opts, err := buildWorkflowOptions(cmd, args, it.prompt)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return
	}
	it.run(context.Background(), opts)
}

// AddFlags adds nothing: scan only uses the persistent flags.
func (it *ScanController) AddFlags(*cobra.Command) {}

func (it *ScanController) run(ctx context.Context, opts commands.WorkflowOptions) {
	if _, err := it.command.Execute(ctx, opts); err != nil {
		logger.Errorf("Scan failed: %v", err)
	}
}
