//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// ProcessCall records a single invocation of Run.
type ProcessCall struct {
	Dir    string
	Binary string
	Args   []string
}

// StubProcessRepository implements repositories.ProcessRepository with canned
// results keyed by the first argument (the subcommand).
type StubProcessRepository struct {
	Results map[string]entities.ProcessResult
	Errs    map[string]error
	Calls   []ProcessCall
}

var _ repositories.ProcessRepository = (*StubProcessRepository)(nil)

func (s *StubProcessRepository) Run(
	_ context.Context,
	dir, binary string,
	args ...string,
) (entities.ProcessResult, error) {
	s.Calls = append(s.Calls, ProcessCall{Dir: dir, Binary: binary, Args: args})

	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	if err := s.Errs[key]; err != nil {
		return entities.ProcessResult{}, err
	}
	result := s.Results[key]
	result.Command = binary + " " + strings.Join(args, " ")
	return result, nil
}
