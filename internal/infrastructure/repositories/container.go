package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/depdoctor/internal/domain/repositories"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/decision"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/nodejs"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/presenter"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/process"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/repositories/report"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(process.NewExecProcessRepository); err != nil {
		return err
	}

	// Register manager registry with all package manager adapters
	if err := container.Provide(func(proc domainRepos.ProcessRepository) *ManagerRegistry {
		reg := NewManagerRegistry()
		reg.Register(nodejs.NewNpmManagerRepository(proc))
		reg.Register(nodejs.NewYarnManagerRepository(proc))
		reg.Register(nodejs.NewPnpmManagerRepository(proc))
		return reg
	}); err != nil {
		return err
	}

	for _, constructor := range []any{
		manifest.NewPackageJSONManifestRepository,
		git.NewGitWorkspaceRepository,
		presenter.NewTablePresenterRepository,
		report.NewJSONReportRepository,
		decision.NewSurveyDecisionRepository,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}
