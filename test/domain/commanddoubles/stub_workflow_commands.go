//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depdoctor/internal/domain/commands"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.ScanResult
	LastOpts         commands.WorkflowOptions
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(_ context.Context, opts commands.WorkflowOptions) (*commands.ScanResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubAnalyzeCommand is a stub implementation of commands.Analyze.
type StubAnalyzeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.AnalyzeResult
	LastOpts         commands.WorkflowOptions
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context,
	opts commands.WorkflowOptions,
) (*commands.AnalyzeResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubCleanCommand is a stub implementation of commands.Clean.
type StubCleanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.CleanResult
	LastOpts         commands.WorkflowOptions
}

var _ commands.Clean = (*StubCleanCommand)(nil)

func (s *StubCleanCommand) Execute(_ context.Context, opts commands.WorkflowOptions) (*commands.CleanResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.Result == nil && s.ExecuteErr == nil {
		return &commands.CleanResult{Success: true}, nil
	}
	return s.Result, s.ExecuteErr
}
