package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

// CleanController handles the "clean" subcommand.
type CleanController struct {
	command commands.Clean
	prompt  *decision.SurveyDecisionRepository
}

// NewCleanController creates a new CleanController.
func NewCleanController(command commands.Clean, prompt *decision.SurveyDecisionRepository) *CleanController {
	return &CleanController{command: command, prompt: prompt}
}

// GetBind returns the Cobra command metadata for the clean controller.
func (it *CleanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clean [path]",
		Short: "Something is wrong, reinstall everything",
		Long: `Delete node_modules and the lockfile, reinstall from package.json and
verify that every declared dependency is installed afterwards.`,
	}
}

// Execute runs the clean workflow.
func (it *CleanController) Execute(cmd *cobra.Command, args []string) {
	opts, err := buildWorkflowOptions(cmd, args, it.prompt)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return
	}
	it.run(context.Background(), opts)
}

// AddFlags adds nothing: clean only uses the persistent flags.
func (it *CleanController) AddFlags(*cobra.Command) {}

func (it *CleanController) run(ctx context.Context, opts commands.WorkflowOptions) {
	result, err := it.command.Execute(ctx, opts)
	if err != nil {
		logger.Errorf("Clean failed: %v", err)
		return
	}
	if !result.DryRun && !result.Success {
		logger.Error("Clean finished with missing dependencies")
	}
}
