//go:build unit

package commands_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depdoctor/internal/infrastructure/repositories"
	"github.com/rios0rios0/depdoctor/test/domain/entitybuilders"
	"github.com/rios0rios0/depdoctor/test/infrastructure/repositorydoubles"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test clock

func fixedClock() entities.Clock {
	return func() time.Time { return fixedNow }
}

// fixture wires the commands to doubles around a single spy manager.
type fixture struct {
	dir       string
	manager   *repositorydoubles.SpyManagerRepository
	manifests *repositorydoubles.StubManifestRepository
	workspace *repositorydoubles.StubWorkspaceRepository
	reports   *repositorydoubles.SpyReportRepository
	decider   *repositorydoubles.StubDecisionRepository
	registry  *infraRepos.ManagerRegistry
}

func newFixture(t *testing.T, managerName string) *fixture {
	t.Helper()
	manager := repositorydoubles.NewSpyManagerRepository(managerName)
	registry := infraRepos.NewManagerRegistry()
	registry.Register(manager)
	return &fixture{
		dir:     t.TempDir(),
		manager: manager,
		manifests: &repositorydoubles.StubManifestRepository{
			Manifest: entitybuilders.NewManifestBuilder().
				WithDependency("lodash", "^4.17.21").
				WithDevDependency("nodemon", "^2.0.20").
				BuildManifest(),
		},
		workspace: &repositorydoubles.StubWorkspaceRepository{},
		reports:   &repositorydoubles.SpyReportRepository{},
		decider:   &repositorydoubles.StubDecisionRepository{Strategy: entities.StrategyIgnore},
		registry:  registry,
	}
}

func (f *fixture) options() commands.WorkflowOptions {
	return commands.WorkflowOptions{
		ProjectDir: f.dir,
		Manager:    f.manager.Name(),
		Decider:    f.decider,
	}
}

func (f *fixture) cleanCommand() *commands.CleanCommand {
	return commands.NewCleanCommand(f.registry, f.manifests, f.workspace, f.reports, fixedClock())
}

func (f *fixture) scanCommand() *commands.ScanCommand {
	return commands.NewScanCommand(f.registry, f.manifests, f.cleanCommand(), f.reports, fixedClock())
}

func (f *fixture) analyzeCommand() *commands.AnalyzeCommand {
	command := commands.NewAnalyzeCommand(
		f.registry, f.manifests, &repositorydoubles.DummyPresenterRepository{}, f.reports, fixedClock(),
	)
	command.SetOutput(io.Discard)
	return command
}

func (f *fixture) touch(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{f.dir}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	return path
}
