package repositories

import (
	"context"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// DecisionRepository is the boundary where workflows block for an external
// decision. Interactive and scripted callers implement it alike, so the
// workflows never know whether a human answered.
type DecisionRepository interface {
	SelectWorkflow(ctx context.Context) (entities.Workflow, error)
	SelectManager(ctx context.Context, options []string) (string, error)
	ConfirmWantedUpdate(ctx context.Context, outdated []entities.OutdatedRecord) (bool, error)
	ConfirmAuditTool(ctx context.Context, tool entities.AuxiliaryTool) (bool, error)
	SelectVulnerabilityStrategy(
		ctx context.Context,
		vulnerabilities []entities.VulnerabilityRecord,
	) (entities.VulnerabilityStrategy, error)
}
