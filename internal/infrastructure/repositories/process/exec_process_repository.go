package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// ExecProcessRepository runs processes with os/exec, capturing stdout and
// stderr separately.
type ExecProcessRepository struct{}

// NewExecProcessRepository creates a new ExecProcessRepository.
func NewExecProcessRepository() repositories.ProcessRepository {
	return &ExecProcessRepository{}
}

// Run starts binary in dir and waits for it. A non-zero exit status is not an
// error here: it is reported through ProcessResult.ExitCode.
func (it *ExecProcessRepository) Run(
	ctx context.Context,
	dir, binary string,
	args ...string,
) (entities.ProcessResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := entities.ProcessResult{Command: entities.CommandLine(binary, args...)}
	logger.Debugf("Executing %q in %s", result.Command, dir)

	runErr := cmd.Run()
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Debugf("%q exited with code %d", result.Command, result.ExitCode)
			return result, nil
		}
		return result, fmt.Errorf("failed to start %q: %w", result.Command, runErr)
	}
	return result, nil
}
