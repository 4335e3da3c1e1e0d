package repositories

import (
	"context"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// ManagerRepository abstracts one package manager (npm, yarn, pnpm). It turns
// abstract operations into that manager's command line and returns its output.
// Output normalization is not its concern: ListOutdated and Audit return the
// manager-native bytes, described by Profile().OutdatedFormat/AuditFormat.
type ManagerRepository interface {
	// Name returns the manager identifier (e.g. "npm").
	Name() string

	// Profile describes the manager's command dialect, lockfile and output formats.
	Profile() entities.ManagerProfile

	// ListInstalled returns the package names present in the install tree of projectDir.
	ListInstalled(ctx context.Context, projectDir string) (entities.NameSet, error)

	// ListOutdated returns the raw "outdated --json" report.
	ListOutdated(ctx context.Context, projectDir string) ([]byte, error)

	// Audit returns the raw "audit --json" report.
	Audit(ctx context.Context, projectDir string) ([]byte, error)

	// AuditTool returns the auxiliary package the audit needs, or nil when
	// auditing is built in.
	AuditTool() *entities.AuxiliaryTool

	// Reinstall runs a full install from the manifest.
	Reinstall(ctx context.Context, projectDir string) error

	// Run executes an arbitrary subcommand. A non-zero exit is returned as an
	// *entities.InvocationError alongside the captured result.
	Run(ctx context.Context, projectDir string, args ...string) (entities.ProcessResult, error)
}
