package nodejs

import (
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// NpmManagerRepository drives npm.
type NpmManagerRepository struct {
	nodeManagerRepository
}

// NewNpmManagerRepository creates the npm adapter.
func NewNpmManagerRepository(process repositories.ProcessRepository) repositories.ManagerRepository {
	return &NpmManagerRepository{nodeManagerRepository{
		profile: entities.ManagerProfile{
			Name:           entities.ManagerNpm,
			Binary:         "npm",
			InstallVerb:    "install",
			DevFlag:        "--save-dev",
			Lockfile:       "package-lock.json",
			OutdatedFormat: entities.OutdatedFormatMapping,
			AuditFormat:    entities.AuditFormatAdvisoryMap,
		},
		process:   process,
		listArgs:  []string{"ls", "--parseable"},
		parseList: parseParseableList,

		listPolicy:     npmListPolicy,
		outdatedPolicy: exitFoundItems,
		auditPolicy:    exitFoundItems,
	}}
}

// npmListPolicy tolerates exit code 1: npm ls fails with ELSPROBLEMS when
// declared packages are missing, which is exactly what a scan looks for, and
// still prints the packages it found.
func npmListPolicy(result entities.ProcessResult) bool {
	return result.ExitCode == 0 || (result.ExitCode == 1 && len(result.Stdout) > 0)
}
