package nodejs

import (
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// yarnAuditMaxExit is the highest exit code of "yarn audit": the code is a
// bitmask of the severities found (1 info, 2 low, 4 moderate, 8 high, 16 critical).
const yarnAuditMaxExit = 31

// YarnManagerRepository drives yarn (classic).
type YarnManagerRepository struct {
	nodeManagerRepository
}

// NewYarnManagerRepository creates the yarn adapter.
func NewYarnManagerRepository(process repositories.ProcessRepository) repositories.ManagerRepository {
	return &YarnManagerRepository{nodeManagerRepository{
		profile: entities.ManagerProfile{
			Name:           entities.ManagerYarn,
			Binary:         "yarn",
			InstallVerb:    "add",
			DevFlag:        "--dev",
			Lockfile:       "yarn.lock",
			OutdatedFormat: entities.OutdatedFormatTableEvents,
			AuditFormat:    entities.AuditFormatAdvisoryEvents,
		},
		process:   process,
		listArgs:  []string{"list", "--depth=0"},
		parseList: parseTreeList,

		listPolicy:     exitZero,
		outdatedPolicy: exitFoundItems,
		auditPolicy:    yarnAuditPolicy,
	}}
}

func yarnAuditPolicy(result entities.ProcessResult) bool {
	return result.ExitCode >= 0 && result.ExitCode <= yarnAuditMaxExit
}
