package decision

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// AskOneFunc matches survey.AskOne so prompts can be replaced in tests.
type AskOneFunc func(prompt survey.Prompt, response any, opts ...survey.AskOpt) error

type choice[T any] struct {
	label string
	value T
}

var workflowChoices = []choice[entities.Workflow]{
	{label: "check if there is any dependency missing", value: entities.WorkflowScan},
	{label: "search for outdated & vulnerable dependencies", value: entities.WorkflowAnalyze},
	{label: "something is wrong, reinstall everything", value: entities.WorkflowClean},
}

var strategyChoices = []choice[entities.VulnerabilityStrategy]{
	{label: "upgrade to latest version", value: entities.StrategyLatest},
	{label: "upgrade to fix only", value: entities.StrategyFixOnly},
	{label: "ignore", value: entities.StrategyIgnore},
}

// SurveyDecisionRepository asks the user on the terminal.
type SurveyDecisionRepository struct {
	askOne AskOneFunc
}

// NewSurveyDecisionRepository creates a terminal-backed decision repository.
func NewSurveyDecisionRepository() *SurveyDecisionRepository {
	return &SurveyDecisionRepository{askOne: survey.AskOne}
}

// NewSurveyDecisionRepositoryWith creates a decision repository using the given prompt function.
func NewSurveyDecisionRepositoryWith(askOne AskOneFunc) *SurveyDecisionRepository {
	return &SurveyDecisionRepository{askOne: askOne}
}

var _ repositories.DecisionRepository = (*SurveyDecisionRepository)(nil)

func (it *SurveyDecisionRepository) SelectWorkflow(_ context.Context) (entities.Workflow, error) {
	return selectOne(it.askOne, "What do you want this tool to do?", workflowChoices)
}

func (it *SurveyDecisionRepository) SelectManager(_ context.Context, options []string) (string, error) {
	var answer string
	if err := it.askOne(&survey.Select{
		Message: "Which one is your package manager?",
		Options: options,
	}, &answer); err != nil {
		return "", fmt.Errorf("failed to select package manager: %w", err)
	}
	return answer, nil
}

func (it *SurveyDecisionRepository) ConfirmWantedUpdate(
	_ context.Context,
	_ []entities.OutdatedRecord,
) (bool, error) {
	return confirm(it.askOne, `Do you want to update all dependencies to "wanted"?`, false)
}

func (it *SurveyDecisionRepository) ConfirmAuditTool(
	_ context.Context,
	tool entities.AuxiliaryTool,
) (bool, error) {
	return confirm(it.askOne,
		fmt.Sprintf("Auditing needs %s, which is not installed. Do you accept installing it?", tool.Package),
		false)
}

func (it *SurveyDecisionRepository) SelectVulnerabilityStrategy(
	_ context.Context,
	_ []entities.VulnerabilityRecord,
) (entities.VulnerabilityStrategy, error) {
	return selectOne(it.askOne, "What do you want to do about the vulnerabilities?", strategyChoices)
}

func confirm(askOne AskOneFunc, message string, def bool) (bool, error) {
	answer := def
	if err := askOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return answer, nil
}

func selectOne[T any](askOne AskOneFunc, message string, choices []choice[T]) (T, error) {
	var zero T
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.label
	}

	var answer string
	if err := askOne(&survey.Select{Message: message, Options: labels}, &answer); err != nil {
		return zero, fmt.Errorf("failed to read selection: %w", err)
	}
	for _, c := range choices {
		if c.label == answer {
			return c.value, nil
		}
	}
	return zero, fmt.Errorf("unexpected selection %q", answer)
}
