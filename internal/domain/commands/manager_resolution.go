package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depdoctor/internal/infrastructure/repositories"
)

// resolveManager picks the package manager for a run: the explicit name first,
// then the lockfile found in the project when detection is enabled, and
// finally the caller's answer to the "which manager?" decision.
func resolveManager(
	ctx context.Context,
	registry *infraRepos.ManagerRegistry,
	opts WorkflowOptions,
) (repositories.ManagerRepository, error) {
	name := opts.Manager
	if name == "" && opts.DetectManager {
		name = detectLocalPackageManager(opts.ProjectDir)
		logger.Infof("Detected package manager: %s", name)
	}
	if name == "" {
		if opts.Decider == nil {
			return nil, fmt.Errorf("%w: package manager", entities.ErrDecisionUnavailable)
		}
		selected, err := opts.Decider.SelectManager(ctx, registry.Names())
		if err != nil {
			return nil, err
		}
		name = selected
	}
	return registry.Get(name)
}

// detectLocalPackageManager determines which package manager the project
// uses by checking for lockfiles.
func detectLocalPackageManager(projectDir string) string {
	if _, err := os.Stat(filepath.Join(projectDir, "pnpm-lock.yaml")); err == nil {
		return entities.ManagerPnpm
	}
	if _, err := os.Stat(filepath.Join(projectDir, "yarn.lock")); err == nil {
		return entities.ManagerYarn
	}
	return entities.ManagerNpm
}
