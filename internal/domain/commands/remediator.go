package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// applyActions dispatches the planned actions one after the other. A failed
// action is recorded and the batch goes on; nothing runs concurrently because
// package managers do not tolerate parallel writes to the lockfile.
func applyActions(
	ctx context.Context,
	manager repositories.ManagerRepository,
	projectDir string,
	actions []entities.RemediationAction,
	dryRun bool,
) []entities.RemediationAction {
	for i := range actions {
		action := &actions[i]
		switch action.Outcome {
		case entities.OutcomeSkippedTransitive:
			logger.Infof("%s is not a direct dependency, skipping", action.Name)
			continue
		case entities.OutcomeSkippedNoFix:
			logger.Warnf("%s has no recommended fix, skipping", action.Name)
			continue
		case entities.OutcomePending:
		default:
			continue
		}
		if !action.Executable() {
			continue
		}

		if dryRun {
			logger.Infof("[DRY RUN] Would run: %s", action.Command)
			continue
		}

		logger.Infof("Running: %s", action.Command)
		if _, err := manager.Run(ctx, projectDir, action.Args...); err != nil {
			logger.Errorf("Failed to update %s: %v", action.Name, err)
			action.Outcome = entities.OutcomeFailed
			action.Detail = err.Error()
			continue
		}
		action.Outcome = entities.OutcomeApplied
	}
	return actions
}
