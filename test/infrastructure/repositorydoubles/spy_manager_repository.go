//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// SpyManagerRepository implements repositories.ManagerRepository as a configurable spy.
type SpyManagerRepository struct {
	// --- identity ---
	ManagerProfile entities.ManagerProfile

	// --- ListInstalled ---
	// one set per call; the last one is repeated once exhausted
	Installed          []entities.NameSet
	ListInstalledErr   error
	ListInstalledCalls int

	// --- ListOutdated / Audit ---
	OutdatedRaw []byte
	OutdatedErr error
	AuditRaw    []byte
	AuditErr    error
	AuditCalls  int

	// --- AuditTool ---
	Tool *entities.AuxiliaryTool

	// --- Reinstall ---
	ReinstallErr   error
	ReinstallCalls int

	// --- Run ---
	// keyed by the joined arguments, e.g. "install axios@0.21.4"
	RunErrs  map[string]error
	RunCalls [][]string
}

// NewSpyManagerRepository creates a spy with the command dialect of the named manager.
func NewSpyManagerRepository(name string) *SpyManagerRepository {
	profile := entities.ManagerProfile{
		Name:           name,
		Binary:         name,
		InstallVerb:    "add",
		OutdatedFormat: entities.OutdatedFormatMapping,
		AuditFormat:    entities.AuditFormatAdvisoryMap,
	}
	switch name {
	case entities.ManagerNpm:
		profile.InstallVerb = "install"
		profile.DevFlag = "--save-dev"
		profile.Lockfile = "package-lock.json"
	case entities.ManagerYarn:
		profile.DevFlag = "--dev"
		profile.Lockfile = "yarn.lock"
		profile.OutdatedFormat = entities.OutdatedFormatTableEvents
		profile.AuditFormat = entities.AuditFormatAdvisoryEvents
	default:
		profile.DevFlag = "-D"
		profile.Lockfile = "pnpm-lock.yaml"
	}
	return &SpyManagerRepository{ManagerProfile: profile}
}

var _ repositories.ManagerRepository = (*SpyManagerRepository)(nil)

func (m *SpyManagerRepository) Name() string { return m.ManagerProfile.Name }

func (m *SpyManagerRepository) Profile() entities.ManagerProfile { return m.ManagerProfile }

func (m *SpyManagerRepository) ListInstalled(_ context.Context, _ string) (entities.NameSet, error) {
	m.ListInstalledCalls++
	if m.ListInstalledErr != nil {
		return nil, m.ListInstalledErr
	}
	if len(m.Installed) == 0 {
		return entities.NewNameSet(), nil
	}
	idx := min(m.ListInstalledCalls, len(m.Installed)) - 1
	return m.Installed[idx], nil
}

func (m *SpyManagerRepository) ListOutdated(_ context.Context, _ string) ([]byte, error) {
	return m.OutdatedRaw, m.OutdatedErr
}

func (m *SpyManagerRepository) Audit(_ context.Context, _ string) ([]byte, error) {
	m.AuditCalls++
	return m.AuditRaw, m.AuditErr
}

func (m *SpyManagerRepository) AuditTool() *entities.AuxiliaryTool { return m.Tool }

func (m *SpyManagerRepository) Reinstall(_ context.Context, _ string) error {
	m.ReinstallCalls++
	return m.ReinstallErr
}

func (m *SpyManagerRepository) Run(
	_ context.Context,
	_ string,
	args ...string,
) (entities.ProcessResult, error) {
	m.RunCalls = append(m.RunCalls, args)
	command := entities.CommandLine(m.ManagerProfile.Binary, args...)
	if err := m.RunErrs[strings.Join(args, " ")]; err != nil {
		return entities.ProcessResult{Command: command, ExitCode: 1}, err
	}
	return entities.ProcessResult{Command: command}, nil
}
