package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depdoctor/internal/infrastructure/repositories"
)

// Clean is the interface for the clean-reinstall workflow.
type Clean interface {
	Execute(ctx context.Context, opts WorkflowOptions) (*CleanResult, error)
}

// CleanResult is the outcome of one wipe-and-reinstall pass.
type CleanResult struct {
	Manager      string
	Deleted      []string // paths actually removed, relative to the project
	Reinstalled  bool
	Verification entities.DiffResult
	Success      bool
	DryRun       bool
}

// CleanCommand deletes the install tree and the lockfile, reinstalls from the
// manifest and verifies that nothing declared is missing afterwards.
type CleanCommand struct {
	registry  *infraRepos.ManagerRegistry
	manifests repositories.ManifestRepository
	workspace repositories.WorkspaceRepository
	reports   repositories.ReportRepository
	clock     entities.Clock
}

// NewCleanCommand creates a new CleanCommand.
func NewCleanCommand(
	registry *infraRepos.ManagerRegistry,
	manifests repositories.ManifestRepository,
	workspace repositories.WorkspaceRepository,
	reports repositories.ReportRepository,
	clock entities.Clock,
) *CleanCommand {
	return &CleanCommand{
		registry:  registry,
		manifests: manifests,
		workspace: workspace,
		reports:   reports,
		clock:     clock,
	}
}

func (it *CleanCommand) Execute(ctx context.Context, opts WorkflowOptions) (*CleanResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	manager, err := resolveManager(ctx, it.registry, opts)
	if err != nil {
		return nil, err
	}
	manifest, err := it.manifests.Read(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	result, err := it.reconcile(ctx, manager, manifest, opts)
	if result != nil && !result.DryRun {
		saveReport(it.reports, it.clock, opts, entities.WorkflowClean, manager.Name(),
			[]entities.SummaryResult{cleanCheck(result)})
	}
	return result, err
}

// reconcile runs one clean pass. There is no retry: a failed reinstall is
// reported and ends the workflow.
func (it *CleanCommand) reconcile(
	ctx context.Context,
	manager repositories.ManagerRepository,
	manifest *entities.Manifest,
	opts WorkflowOptions,
) (*CleanResult, error) {
	profile := manager.Profile()
	result := &CleanResult{Manager: manager.Name(), DryRun: opts.DryRun}
	targets := []string{entities.InstallTreeDir, profile.Lockfile}

	dirty, err := it.workspace.HasUncommittedChanges(opts.ProjectDir, profile.Lockfile)
	if err != nil {
		logger.Warnf("Could not check the git status of %s: %v", profile.Lockfile, err)
	} else if dirty {
		logger.Warnf("%s has uncommitted changes that will be lost", profile.Lockfile)
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would delete %s and run %s",
			strings.Join(targets, ", "), entities.CommandLine(profile.Binary, "install"))
		return result, nil
	}

	for _, target := range targets {
		path := filepath.Join(opts.ProjectDir, target)
		if _, statErr := os.Lstat(path); errors.Is(statErr, fs.ErrNotExist) {
			logger.Debugf("%s does not exist, nothing to delete", path)
			continue
		}
		logger.Infof("Deleting %s...", path)
		if removeErr := os.RemoveAll(path); removeErr != nil {
			return result, fmt.Errorf("failed to delete %s: %w", path, removeErr)
		}
		result.Deleted = append(result.Deleted, target)
	}

	logger.Infof("Reinstalling dependencies with %s...", manager.Name())
	if reinstallErr := manager.Reinstall(ctx, opts.ProjectDir); reinstallErr != nil {
		logger.Errorf("Reinstall failed: %v", reinstallErr)
		return result, fmt.Errorf("reinstall failed: %w", reinstallErr)
	}
	result.Reinstalled = true

	installed, err := manager.ListInstalled(ctx, opts.ProjectDir)
	if err != nil {
		return result, fmt.Errorf("failed to verify the reinstall: %w", err)
	}
	result.Verification = entities.Diff(manifest.DeclaredNames(), installed)
	result.Success = !result.Verification.HasMissing()

	if result.Success {
		logger.Info("All good, you're good to go")
	} else {
		logger.Errorf("Still missing after reinstall: %s", strings.Join(result.Verification.Missing, ", "))
	}
	return result, nil
}

func cleanCheck(result *CleanResult) entities.SummaryResult {
	if !result.Reinstalled {
		return entities.SummaryResult{
			Name:    "clean",
			Outcome: "failed",
			Detail:  "reinstall did not complete",
		}
	}
	return missingCheck("clean", result.Verification)
}
