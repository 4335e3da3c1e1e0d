package nodejs

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// exitPolicy decides whether a finished process counts as successful.
type exitPolicy func(result entities.ProcessResult) bool

// exitZero accepts only a clean exit.
func exitZero(result entities.ProcessResult) bool {
	return result.ExitCode == 0
}

// exitFoundItems accepts exit code 1, which the managers use to say "the
// report is not empty" for outdated and audit.
func exitFoundItems(result entities.ProcessResult) bool {
	return result.ExitCode == 0 || result.ExitCode == 1
}

// nodeManagerRepository holds what npm, yarn and pnpm have in common: every
// operation is one subprocess whose exit code is checked against a per-manager
// policy.
type nodeManagerRepository struct {
	profile   entities.ManagerProfile
	process   repositories.ProcessRepository
	listArgs  []string
	parseList func(output []byte) entities.NameSet
	auditTool *entities.AuxiliaryTool

	listPolicy     exitPolicy
	outdatedPolicy exitPolicy
	auditPolicy    exitPolicy
}

func (it *nodeManagerRepository) Name() string { return it.profile.Name }

func (it *nodeManagerRepository) Profile() entities.ManagerProfile { return it.profile }

func (it *nodeManagerRepository) AuditTool() *entities.AuxiliaryTool { return it.auditTool }

// ListInstalled lists the install tree and keeps only package names.
func (it *nodeManagerRepository) ListInstalled(
	ctx context.Context,
	projectDir string,
) (entities.NameSet, error) {
	result, err := it.invoke(ctx, projectDir, it.listPolicy, it.listArgs...)
	if err != nil {
		return nil, err
	}
	installed := it.parseList(result.Stdout)
	logger.Debugf("[%s] %d packages found in the install tree", it.profile.Name, installed.Len())
	return installed, nil
}

// ListOutdated returns the raw outdated report.
func (it *nodeManagerRepository) ListOutdated(ctx context.Context, projectDir string) ([]byte, error) {
	result, err := it.invoke(ctx, projectDir, it.outdatedPolicy, "outdated", "--json")
	if err != nil {
		return nil, err
	}
	return result.Stdout, nil
}

// Audit returns the raw audit report.
func (it *nodeManagerRepository) Audit(ctx context.Context, projectDir string) ([]byte, error) {
	result, err := it.invoke(ctx, projectDir, it.auditPolicy, "audit", "--json")
	if err != nil {
		return nil, err
	}
	return result.Stdout, nil
}

// Reinstall runs a full install from the manifest.
func (it *nodeManagerRepository) Reinstall(ctx context.Context, projectDir string) error {
	result, err := it.invoke(ctx, projectDir, exitZero, "install")
	if err != nil {
		return err
	}
	logger.Debugf("[%s] install output:\n%s", it.profile.Name, result.Stdout)
	return nil
}

// Run executes an arbitrary subcommand, accepting only a clean exit.
func (it *nodeManagerRepository) Run(
	ctx context.Context,
	projectDir string,
	args ...string,
) (entities.ProcessResult, error) {
	return it.invoke(ctx, projectDir, exitZero, args...)
}

func (it *nodeManagerRepository) invoke(
	ctx context.Context,
	projectDir string,
	accept exitPolicy,
	args ...string,
) (entities.ProcessResult, error) {
	result, err := it.process.Run(ctx, projectDir, it.profile.Binary, args...)
	if err != nil {
		return result, fmt.Errorf("%w: %w", entities.ErrManagerInvocation, err)
	}
	if !accept(result) {
		return result, &entities.InvocationError{
			Command:  result.Command,
			ExitCode: result.ExitCode,
			Stderr:   string(result.Stderr),
		}
	}
	return result, nil
}
