package entities

import (
	"time"

	"go.uber.org/dig"
)

// Clock returns the current time; commands take it as a dependency so run
// summaries can be stamped deterministically in tests.
type Clock func() time.Time

// RegisterProviders registers all entity providers with the DIG container.
// Settings are not provided here: they depend on the --config flag and are
// loaded by the controllers layer.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() Clock { return time.Now })
}
