package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

// AnalyzeController handles the "analyze" subcommand.
type AnalyzeController struct {
	command commands.Analyze
	prompt  *decision.SurveyDecisionRepository
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze, prompt *decision.SurveyDecisionRepository) *AnalyzeController {
	return &AnalyzeController{command: command, prompt: prompt}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze [path]",
		Short: "Search for outdated and vulnerable dependencies",
		Long: `List outdated dependencies and offer to update them to the "wanted" version,
then audit the project and offer to upgrade vulnerable direct dependencies
to their latest or fixed version. Transitive dependencies are never touched.`,
	}
}

// Execute runs the analyze workflow.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) {
	opts, err := buildWorkflowOptions(cmd, args, it.prompt)
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return
	}
	it.run(context.Background(), opts)
}

// AddFlags adds the answers to the analyze decisions.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	AddAnswerFlags(cmd)
}

func (it *AnalyzeController) run(ctx context.Context, opts commands.WorkflowOptions) {
	if _, err := it.command.Execute(ctx, opts); err != nil {
		logger.Errorf("Analyze failed: %v", err)
	}
}
