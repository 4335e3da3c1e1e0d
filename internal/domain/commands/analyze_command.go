package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depdoctor/internal/infrastructure/repositories"
)

// Analyze is the interface for the outdated and vulnerability workflow.
type Analyze interface {
	Execute(ctx context.Context, opts WorkflowOptions) (*AnalyzeResult, error)
}

// AnalyzeResult is the outcome of one analyze run.
type AnalyzeResult struct {
	Manager         string
	Outdated        []entities.OutdatedRecord
	UpdateWanted    bool
	Vulnerabilities []entities.VulnerabilityRecord
	Strategy        entities.VulnerabilityStrategy
	Actions         []entities.RemediationAction
}

// AnalyzeCommand reports outdated and vulnerable packages and upgrades the
// direct dependencies among them, as the caller decides.
type AnalyzeCommand struct {
	registry  *infraRepos.ManagerRegistry
	manifests repositories.ManifestRepository
	presenter repositories.PresenterRepository
	reports   repositories.ReportRepository
	clock     entities.Clock
	output    io.Writer
}

// NewAnalyzeCommand creates a new AnalyzeCommand printing its tables to stdout.
func NewAnalyzeCommand(
	registry *infraRepos.ManagerRegistry,
	manifests repositories.ManifestRepository,
	presenter repositories.PresenterRepository,
	reports repositories.ReportRepository,
	clock entities.Clock,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		registry:  registry,
		manifests: manifests,
		presenter: presenter,
		reports:   reports,
		clock:     clock,
		output:    os.Stdout,
	}
}

func (it *AnalyzeCommand) Execute(ctx context.Context, opts WorkflowOptions) (*AnalyzeResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if opts.Decider == nil {
		return nil, fmt.Errorf("%w: no decision source configured", entities.ErrDecisionUnavailable)
	}

	manager, err := resolveManager(ctx, it.registry, opts)
	if err != nil {
		return nil, err
	}
	manifest, err := it.manifests.Read(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{Manager: manager.Name()}
	declared := manifest.Sets()

	if outdatedErr := it.updateOutdated(ctx, manager, declared, opts, result); outdatedErr != nil {
		return result, outdatedErr
	}
	if auditErr := it.remediateVulnerabilities(ctx, manager, declared, opts, result); auditErr != nil {
		return result, auditErr
	}

	if len(result.Actions) > 0 {
		it.print(it.presenter.Actions(result.Actions))
	}
	logger.Info("All right, end of run")
	saveReport(it.reports, it.clock, opts, entities.WorkflowAnalyze, manager.Name(),
		entities.ActionResults(result.Actions))
	return result, nil
}

func (it *AnalyzeCommand) updateOutdated(
	ctx context.Context,
	manager repositories.ManagerRepository,
	declared entities.DeclaredSets,
	opts WorkflowOptions,
	result *AnalyzeResult,
) error {
	logger.Infof("Looking for outdated dependencies with %s...", manager.Name())
	raw, err := manager.ListOutdated(ctx, opts.ProjectDir)
	if err != nil {
		logger.Errorf("Failed to list outdated dependencies: %v", err)
		return nil
	}

	records, stats := entities.ClassifyOutdated(manager.Profile().OutdatedFormat, raw)
	logDropped("outdated", stats)
	result.Outdated = records
	if len(records) == 0 {
		logger.Info("No outdated version")
		return nil
	}

	it.print(it.presenter.Outdated(records))
	confirmed, err := opts.Decider.ConfirmWantedUpdate(ctx, records)
	if err != nil {
		return err
	}
	result.UpdateWanted = confirmed
	if !confirmed {
		return nil
	}

	actions := make([]entities.RemediationAction, 0, len(records))
	for _, record := range records {
		actions = append(actions, entities.PlanOutdated(record, declared, entities.ModeWanted, manager.Profile()))
	}
	result.Actions = append(result.Actions, applyActions(ctx, manager, opts.ProjectDir, actions, opts.DryRun)...)
	return nil
}

func (it *AnalyzeCommand) remediateVulnerabilities(
	ctx context.Context,
	manager repositories.ManagerRepository,
	declared entities.DeclaredSets,
	opts WorkflowOptions,
	result *AnalyzeResult,
) error {
	records, err := it.audit(ctx, manager, opts)
	if err != nil {
		return err
	}
	result.Vulnerabilities = records
	if len(records) == 0 {
		logger.Info("No vulnerabilities found, good coding!")
		return nil
	}

	it.print(it.presenter.Vulnerabilities(records))
	strategy, err := opts.Decider.SelectVulnerabilityStrategy(ctx, records)
	if err != nil {
		return err
	}
	result.Strategy = strategy

	mode, ok := strategy.Mode()
	if !ok {
		logger.Info("Vulnerabilities left as they are")
		return nil
	}

	actions := make([]entities.RemediationAction, 0, len(records))
	for _, record := range records {
		actions = append(actions, entities.PlanVulnerability(record, declared, mode, manager.Profile()))
	}
	result.Actions = append(result.Actions, applyActions(ctx, manager, opts.ProjectDir, actions, opts.DryRun)...)
	return nil
}

// audit returns the classified vulnerabilities. Declining the auxiliary audit
// tool means no data is available, which is not an error.
func (it *AnalyzeCommand) audit(
	ctx context.Context,
	manager repositories.ManagerRepository,
	opts WorkflowOptions,
) ([]entities.VulnerabilityRecord, error) {
	if tool := manager.AuditTool(); tool != nil && !toolInstalled(opts.ProjectDir, tool.Package) {
		accepted, err := opts.Decider.ConfirmAuditTool(ctx, *tool)
		if err != nil {
			return nil, err
		}
		if !accepted {
			logger.Infof("Skipping the audit, %s is not installed", tool.Package)
			return nil, nil
		}
		if opts.DryRun {
			logger.Infof("[DRY RUN] Would run: %s", entities.CommandLine(manager.Profile().Binary, tool.InstallArgs...))
			return nil, nil
		}
		logger.Infof("Installing %s...", tool.Package)
		if _, runErr := manager.Run(ctx, opts.ProjectDir, tool.InstallArgs...); runErr != nil {
			logger.Errorf("Failed to install %s: %v", tool.Package, runErr)
			return nil, nil
		}
	}

	logger.Infof("Auditing dependencies with %s...", manager.Name())
	raw, err := manager.Audit(ctx, opts.ProjectDir)
	if err != nil {
		logger.Errorf("Failed to audit dependencies: %v", err)
		return nil, nil
	}
	records, stats := entities.ClassifyVulnerabilities(manager.Profile().AuditFormat, raw)
	logDropped("audit", stats)
	return records, nil
}

func (it *AnalyzeCommand) print(table string) {
	_, _ = fmt.Fprint(it.output, table)
}

func toolInstalled(projectDir, pkg string) bool {
	_, err := os.Stat(filepath.Join(projectDir, entities.InstallTreeDir, filepath.FromSlash(pkg)))
	return err == nil
}

func logDropped(report string, stats entities.ParseStats) {
	logger.Debugf("Parsed %d %s entries", stats.Parsed, report)
	if stats.Dropped > 0 {
		logger.Warnf("Dropped %d unrecognized %s entries", stats.Dropped, report)
	}
}
