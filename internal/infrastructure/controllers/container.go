package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []any{
		NewScanController,
		NewAnalyzeController,
		NewCleanController,
		NewWorkflowController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	scanController *ScanController,
	analyzeController *AnalyzeController,
	cleanController *CleanController,
) *[]entities.Controller {
	return &[]entities.Controller{
		scanController,
		analyzeController,
		cleanController,
	}
}
