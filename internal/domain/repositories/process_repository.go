package repositories

import (
	"context"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// ProcessRepository spawns external processes. The returned error is only set
// when the process could not be started; exit codes are reported in the result.
type ProcessRepository interface {
	Run(ctx context.Context, dir, binary string, args ...string) (entities.ProcessResult, error)
}
