package internal

import (
	"github.com/rios0rios0/depdoctor/internal/domain/entities"
	"github.com/rios0rios0/depdoctor/internal/infrastructure/controllers"
)

// AppInternal holds the controllers the binary exposes.
type AppInternal struct {
	root        *controllers.WorkflowController
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the root and subcommand controllers.
func NewAppInternal(root *controllers.WorkflowController, controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{root: root, controllers: *controllers}
}

// GetRootController returns the controller of the root command.
func (it *AppInternal) GetRootController() *controllers.WorkflowController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
