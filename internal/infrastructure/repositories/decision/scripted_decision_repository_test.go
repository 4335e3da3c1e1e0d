//go:build unit

package decision_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
)

func TestScriptedDecisionRepository(t *testing.T) {
	t.Parallel()

	t.Run("should answer from the configured answers", func(t *testing.T) {
		t.Parallel()

		// given
		yes := true
		repo := decision.NewScriptedDecisionRepository(entities.Answers{
			Workflow:         "analyze",
			UpdateWanted:     &yes,
			InstallAuditTool: &yes,
			Vulnerabilities:  "latest",
		})
		ctx := context.Background()

		// when
		workflow, workflowErr := repo.SelectWorkflow(ctx)
		wanted, _ := repo.ConfirmWantedUpdate(ctx, nil)
		tool, _ := repo.ConfirmAuditTool(ctx, entities.AuxiliaryTool{Package: "@pnpm/audit"})
		strategy, strategyErr := repo.SelectVulnerabilityStrategy(ctx, nil)

		// then
		require.NoError(t, workflowErr)
		require.NoError(t, strategyErr)
		assert.Equal(t, entities.WorkflowAnalyze, workflow)
		assert.True(t, wanted)
		assert.True(t, tool)
		assert.Equal(t, entities.StrategyLatest, strategy)
	})

	t.Run("should never mutate without an explicit answer", func(t *testing.T) {
		t.Parallel()

		// given
		repo := decision.NewScriptedDecisionRepository(entities.Answers{})
		ctx := context.Background()

		// when
		wanted, _ := repo.ConfirmWantedUpdate(ctx, nil)
		tool, _ := repo.ConfirmAuditTool(ctx, entities.AuxiliaryTool{Package: "@pnpm/audit"})
		strategy, err := repo.SelectVulnerabilityStrategy(ctx, nil)

		// then
		require.NoError(t, err)
		assert.False(t, wanted)
		assert.False(t, tool)
		assert.Equal(t, entities.StrategyIgnore, strategy)
	})

	t.Run("should refuse mandatory choices it cannot answer", func(t *testing.T) {
		t.Parallel()

		// given
		repo := decision.NewScriptedDecisionRepository(entities.Answers{})
		ctx := context.Background()

		// when
		_, workflowErr := repo.SelectWorkflow(ctx)
		_, managerErr := repo.SelectManager(ctx, []string{"npm"})

		// then
		assert.ErrorIs(t, workflowErr, entities.ErrDecisionUnavailable)
		assert.ErrorIs(t, managerErr, entities.ErrDecisionUnavailable)
	})
}
