//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/test/infrastructure/repositorydoubles"
)

func TestApplyActions(t *testing.T) {
	t.Parallel()

	t.Run("should dispatch pending actions in order and skip the others", func(t *testing.T) {
		t.Parallel()

		// given
		manager := repositorydoubles.NewSpyManagerRepository(entities.ManagerNpm)
		manager.RunErrs = map[string]error{"install b@2.0.0": errors.New("boom")}
		actions := []entities.RemediationAction{
			{Name: "a", Args: []string{"install", "a@1.0.0"}, Command: "npm install a@1.0.0", Outcome: entities.OutcomePending},
			{Name: "t", Outcome: entities.OutcomeSkippedTransitive},
			{Name: "b", Args: []string{"install", "b@2.0.0"}, Command: "npm install b@2.0.0", Outcome: entities.OutcomePending},
			{Name: "n", Outcome: entities.OutcomeSkippedNoFix},
			{Name: "c", Args: []string{"install", "c@3.0.0", "--save-dev"}, Command: "npm install c@3.0.0 --save-dev", Outcome: entities.OutcomePending},
		}

		// when
		got := commands.ApplyActions(context.Background(), manager, ".", actions, false)

		// then
		assert.Equal(t, [][]string{
			{"install", "a@1.0.0"},
			{"install", "b@2.0.0"},
			{"install", "c@3.0.0", "--save-dev"},
		}, manager.RunCalls)
		assert.Equal(t, entities.OutcomeApplied, got[0].Outcome)
		assert.Equal(t, entities.OutcomeSkippedTransitive, got[1].Outcome)
		assert.Equal(t, entities.OutcomeFailed, got[2].Outcome)
		assert.Equal(t, "boom", got[2].Detail)
		assert.Equal(t, entities.OutcomeSkippedNoFix, got[3].Outcome)
		assert.Equal(t, entities.OutcomeApplied, got[4].Outcome)
	})
}
