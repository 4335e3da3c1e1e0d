//go:build unit

package decision_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

// answering returns a prompt function that picks the option containing label,
// or answers a confirmation with confirm.
func answering(label string, confirm bool, asked *[]survey.Prompt) decision.AskOneFunc {
	return func(prompt survey.Prompt, response any, _ ...survey.AskOpt) error {
		*asked = append(*asked, prompt)
		switch out := response.(type) {
		case *string:
			sel, ok := prompt.(*survey.Select)
			if !ok {
				return errors.New("unexpected prompt")
			}
			for _, option := range sel.Options {
				if option == label {
					*out = option
					return nil
				}
			}
			return errors.New("label not offered")
		case *bool:
			*out = confirm
			return nil
		default:
			return errors.New("unexpected response type")
		}
	}
}

func TestSurveyDecisionRepository(t *testing.T) {
	t.Parallel()

	t.Run("should map the workflow labels", func(t *testing.T) {
		t.Parallel()

		tests := map[string]entities.Workflow{
			"check if there is any dependency missing":      entities.WorkflowScan,
			"search for outdated & vulnerable dependencies": entities.WorkflowAnalyze,
			"something is wrong, reinstall everything":      entities.WorkflowClean,
		}
		for label, want := range tests {
			// given
			var asked []survey.Prompt
			repo := decision.NewSurveyDecisionRepositoryWith(answering(label, false, &asked))

			// when
			got, err := repo.SelectWorkflow(context.Background())

			// then
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should map the vulnerability strategy labels", func(t *testing.T) {
		t.Parallel()

		// given
		var asked []survey.Prompt
		repo := decision.NewSurveyDecisionRepositoryWith(answering("upgrade to fix only", false, &asked))

		// when
		got, err := repo.SelectVulnerabilityStrategy(context.Background(), nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.StrategyFixOnly, got)
	})

	t.Run("should offer the registered managers", func(t *testing.T) {
		t.Parallel()

		// given
		var asked []survey.Prompt
		repo := decision.NewSurveyDecisionRepositoryWith(answering("yarn", false, &asked))

		// when
		got, err := repo.SelectManager(context.Background(), []string{"npm", "pnpm", "yarn"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "yarn", got)
		require.Len(t, asked, 1)
		assert.Equal(t, []string{"npm", "pnpm", "yarn"}, asked[0].(*survey.Select).Options)
	})

	t.Run("should default confirmations to no", func(t *testing.T) {
		t.Parallel()

		// given
		var asked []survey.Prompt
		repo := decision.NewSurveyDecisionRepositoryWith(answering("", true, &asked))

		// when
		got, err := repo.ConfirmAuditTool(context.Background(), entities.AuxiliaryTool{Package: "@pnpm/audit"})

		// then
		require.NoError(t, err)
		assert.True(t, got)
		confirm, ok := asked[0].(*survey.Confirm)
		require.True(t, ok)
		assert.False(t, confirm.Default)
		assert.Contains(t, confirm.Message, "@pnpm/audit")
	})

	t.Run("should propagate an interrupted prompt", func(t *testing.T) {
		t.Parallel()

		// given
		repo := decision.NewSurveyDecisionRepositoryWith(
			func(survey.Prompt, any, ...survey.AskOpt) error { return errors.New("interrupt") },
		)

		// when
		_, err := repo.ConfirmWantedUpdate(context.Background(), nil)

		// then
		assert.Error(t, err)
	})
}
