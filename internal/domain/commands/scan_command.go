package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depdoctor/internal/infrastructure/repositories"
)

// Scan is the interface for the scan workflow.
type Scan interface {
	Execute(ctx context.Context, opts WorkflowOptions) (*ScanResult, error)
}

// ScanResult is the outcome of one scan. Clean is set when missing
// dependencies or a count mismatch triggered a clean pass.
type ScanResult struct {
	Manager string
	Diff    entities.DiffResult
	Clean   *CleanResult
}

// ScanCommand compares the declared dependencies against the install tree and
// falls through to a clean reinstall when something is missing or the counts differ.
type ScanCommand struct {
	registry  *infraRepos.ManagerRegistry
	manifests repositories.ManifestRepository
	clean     *CleanCommand
	reports   repositories.ReportRepository
	clock     entities.Clock
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	registry *infraRepos.ManagerRegistry,
	manifests repositories.ManifestRepository,
	clean *CleanCommand,
	reports repositories.ReportRepository,
	clock entities.Clock,
) *ScanCommand {
	return &ScanCommand{
		registry:  registry,
		manifests: manifests,
		clean:     clean,
		reports:   reports,
		clock:     clock,
	}
}

func (it *ScanCommand) Execute(ctx context.Context, opts WorkflowOptions) (*ScanResult, error) {
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

	logger.Infof("Listing installed dependencies with %s...", manager.Name())
	installed, err := manager.ListInstalled(ctx, opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list installed dependencies: %w", err)
	}

	result := &ScanResult{
		Manager: manager.Name(),
		Diff:    entities.Diff(manifest.DeclaredNames(), installed),
	}
	logger.Debugf("Declared %d, installed %d", result.Diff.DeclaredCount, result.Diff.InstalledCount)
	results := []entities.SummaryResult{scanCheck(result.Diff)}

	if !result.Diff.HasMissing() && result.Diff.CardinalityMatches() {
		logger.Info("Nothing is missing, the problem lies elsewhere, good luck!")
		saveReport(it.reports, it.clock, opts, entities.WorkflowScan, manager.Name(), results)
		return result, nil
	}

	if result.Diff.HasMissing() {
		logger.Warnf("Missing dependencies: %s", strings.Join(result.Diff.Missing, ", "))
	} else {
		logger.Warnf("Declared %d dependencies but %d are installed",
			result.Diff.DeclaredCount, result.Diff.InstalledCount)
	}
	logger.Info("Reinstalling everything...")

	cleanResult, cleanErr := it.clean.reconcile(ctx, manager, manifest, opts)
	result.Clean = cleanResult
	if cleanResult != nil && !cleanResult.DryRun {
		results = append(results, cleanCheck(cleanResult))
	}
	saveReport(it.reports, it.clock, opts, entities.WorkflowScan, manager.Name(), results)
	return result, cleanErr
}

// scanCheck fails on missing dependencies first, then on a count mismatch.
func scanCheck(diff entities.DiffResult) entities.SummaryResult {
	result := missingCheck("scan", diff)
	if result.Success && !diff.CardinalityMatches() {
		result.Outcome = "failed"
		result.Success = false
		result.Detail = fmt.Sprintf("declared %d, installed %d", diff.DeclaredCount, diff.InstalledCount)
	}
	return result
}
