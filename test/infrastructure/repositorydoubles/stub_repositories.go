//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository.
type StubManifestRepository struct {
	Manifest *entities.Manifest
	ReadErr  error
	ReadDirs []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Read(projectDir string) (*entities.Manifest, error) {
	s.ReadDirs = append(s.ReadDirs, projectDir)
	return s.Manifest, s.ReadErr
}

// StubWorkspaceRepository implements repositories.WorkspaceRepository.
type StubWorkspaceRepository struct {
	Dirty        bool
	Err          error
	CheckedPaths []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) HasUncommittedChanges(_, relPath string) (bool, error) {
	s.CheckedPaths = append(s.CheckedPaths, relPath)
	return s.Dirty, s.Err
}

// SpyReportRepository implements repositories.ReportRepository and keeps the saved summaries.
type SpyReportRepository struct {
	SaveErr error
	Paths   []string
	Saved   []entities.RunSummary
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Save(path string, summary entities.RunSummary) error {
	s.Paths = append(s.Paths, path)
	s.Saved = append(s.Saved, summary)
	return s.SaveErr
}

// DummyPresenterRepository is a no-op implementation of repositories.PresenterRepository.
type DummyPresenterRepository struct{}

var _ repositories.PresenterRepository = (*DummyPresenterRepository)(nil)

func (d *DummyPresenterRepository) Outdated([]entities.OutdatedRecord) string { return "" }

func (d *DummyPresenterRepository) Vulnerabilities([]entities.VulnerabilityRecord) string {
	return ""
}

func (d *DummyPresenterRepository) Actions([]entities.RemediationAction) string { return "" }

// StubDecisionRepository implements repositories.DecisionRepository with fixed answers
// and records which decisions were requested.
type StubDecisionRepository struct {
	Workflow       entities.Workflow
	WorkflowErr    error
	Manager        string
	ManagerErr     error
	UpdateWanted   bool
	InstallTool    bool
	Strategy       entities.VulnerabilityStrategy
	StrategyErr    error
	ManagerOptions []string
	WantedAsked    int
	ToolAsked      int
	StrategyAsked  int
}

var _ repositories.DecisionRepository = (*StubDecisionRepository)(nil)

func (s *StubDecisionRepository) SelectWorkflow(context.Context) (entities.Workflow, error) {
	return s.Workflow, s.WorkflowErr
}

func (s *StubDecisionRepository) SelectManager(_ context.Context, options []string) (string, error) {
	s.ManagerOptions = options
	return s.Manager, s.ManagerErr
}

func (s *StubDecisionRepository) ConfirmWantedUpdate(
	_ context.Context,
	_ []entities.OutdatedRecord,
) (bool, error) {
	s.WantedAsked++
	return s.UpdateWanted, nil
}

func (s *StubDecisionRepository) ConfirmAuditTool(_ context.Context, _ entities.AuxiliaryTool) (bool, error) {
	s.ToolAsked++
	return s.InstallTool, nil
}

func (s *StubDecisionRepository) SelectVulnerabilityStrategy(
	_ context.Context,
	_ []entities.VulnerabilityRecord,
) (entities.VulnerabilityStrategy, error) {
	s.StrategyAsked++
	return s.Strategy, s.StrategyErr
}
