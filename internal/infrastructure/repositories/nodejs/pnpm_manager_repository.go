package nodejs

import (
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

const pnpmAuditPackage = "@pnpm/audit"

// PnpmManagerRepository drives pnpm. Its audit relies on an extra dev
// dependency that has to be installed on demand.
type PnpmManagerRepository struct {
	nodeManagerRepository
}

// NewPnpmManagerRepository creates the pnpm adapter.
func NewPnpmManagerRepository(process repositories.ProcessRepository) repositories.ManagerRepository {
	return &PnpmManagerRepository{nodeManagerRepository{
		profile: entities.ManagerProfile{
			Name:           entities.ManagerPnpm,
			Binary:         "pnpm",
			InstallVerb:    "add",
			DevFlag:        "-D",
			Lockfile:       "pnpm-lock.yaml",
			OutdatedFormat: entities.OutdatedFormatMapping,
			AuditFormat:    entities.AuditFormatAdvisoryMap,
		},
		process:   process,
		listArgs:  []string{"list", "--parseable"},
		parseList: parseParseableList,
		auditTool: &entities.AuxiliaryTool{
			Package:     pnpmAuditPackage,
			InstallArgs: []string{"add", "-D", pnpmAuditPackage},
		},

		listPolicy:     exitZero,
		outdatedPolicy: exitFoundItems,
		auditPolicy:    exitFoundItems,
	}}
}
