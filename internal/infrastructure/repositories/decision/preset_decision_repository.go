package decision

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// PresetDecisionRepository answers the decisions given on the command line
// and asks prompt for everything else.
type PresetDecisionRepository struct {
	answers entities.Answers
	prompt  repositories.DecisionRepository
}

// NewPresetDecisionRepository wraps prompt with preset answers.
func NewPresetDecisionRepository(
	answers entities.Answers,
	prompt repositories.DecisionRepository,
) *PresetDecisionRepository {
	return &PresetDecisionRepository{answers: answers, prompt: prompt}
}

var _ repositories.DecisionRepository = (*PresetDecisionRepository)(nil)

func (it *PresetDecisionRepository) SelectWorkflow(ctx context.Context) (entities.Workflow, error) {
	if it.answers.Workflow != "" {
		return entities.Workflow(it.answers.Workflow), nil
	}
	return it.prompt.SelectWorkflow(ctx)
}

func (it *PresetDecisionRepository) SelectManager(ctx context.Context, options []string) (string, error) {
	return it.prompt.SelectManager(ctx, options)
}

func (it *PresetDecisionRepository) ConfirmWantedUpdate(
	ctx context.Context,
	outdated []entities.OutdatedRecord,
) (bool, error) {
	if it.answers.UpdateWanted != nil {
		logger.Debugf("Update to wanted preset to %t", *it.answers.UpdateWanted)
		return *it.answers.UpdateWanted, nil
	}
	return it.prompt.ConfirmWantedUpdate(ctx, outdated)
}

func (it *PresetDecisionRepository) ConfirmAuditTool(
	ctx context.Context,
	tool entities.AuxiliaryTool,
) (bool, error) {
	if it.answers.InstallAuditTool != nil {
		logger.Debugf("Installing %s preset to %t", tool.Package, *it.answers.InstallAuditTool)
		return *it.answers.InstallAuditTool, nil
	}
	return it.prompt.ConfirmAuditTool(ctx, tool)
}

func (it *PresetDecisionRepository) SelectVulnerabilityStrategy(
	ctx context.Context,
	vulnerabilities []entities.VulnerabilityRecord,
) (entities.VulnerabilityStrategy, error) {
	if it.answers.Vulnerabilities != "" {
		return entities.ParseVulnerabilityStrategy(it.answers.Vulnerabilities)
	}
	return it.prompt.SelectVulnerabilityStrategy(ctx, vulnerabilities)
}
