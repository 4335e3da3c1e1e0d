package decision

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// ScriptedDecisionRepository answers every decision from pre-configured
// answers, for automation and CI. Unanswered confirmations default to "no"
// and an unanswered vulnerability strategy defaults to "ignore", so nothing is
// mutated without an explicit opt-in.
type ScriptedDecisionRepository struct {
	answers entities.Answers
}

// NewScriptedDecisionRepository creates a non-interactive decision repository.
func NewScriptedDecisionRepository(answers entities.Answers) *ScriptedDecisionRepository {
	return &ScriptedDecisionRepository{answers: answers}
}

var _ repositories.DecisionRepository = (*ScriptedDecisionRepository)(nil)

func (it *ScriptedDecisionRepository) SelectWorkflow(_ context.Context) (entities.Workflow, error) {
	if it.answers.Workflow == "" {
		return "", fmt.Errorf("%w: workflow (use a subcommand or set answers.workflow)",
			entities.ErrDecisionUnavailable)
	}
	return entities.Workflow(it.answers.Workflow), nil
}

func (it *ScriptedDecisionRepository) SelectManager(_ context.Context, options []string) (string, error) {
	return "", fmt.Errorf("%w: package manager (pass --manager with one of %v)",
		entities.ErrDecisionUnavailable, options)
}

func (it *ScriptedDecisionRepository) ConfirmWantedUpdate(
	_ context.Context,
	_ []entities.OutdatedRecord,
) (bool, error) {
	return answerOrNo("update to wanted", it.answers.UpdateWanted), nil
}

func (it *ScriptedDecisionRepository) ConfirmAuditTool(
	_ context.Context,
	tool entities.AuxiliaryTool,
) (bool, error) {
	return answerOrNo("install "+tool.Package, it.answers.InstallAuditTool), nil
}

func (it *ScriptedDecisionRepository) SelectVulnerabilityStrategy(
	_ context.Context,
	_ []entities.VulnerabilityRecord,
) (entities.VulnerabilityStrategy, error) {
	if it.answers.Vulnerabilities == "" {
		logger.Debug("No vulnerability strategy configured, ignoring vulnerabilities")
		return entities.StrategyIgnore, nil
	}
	return entities.ParseVulnerabilityStrategy(it.answers.Vulnerabilities)
}

func answerOrNo(question string, answer *bool) bool {
	if answer == nil {
		logger.Debugf("No answer configured for %q, assuming no", question)
		return false
	}
	return *answer
}
