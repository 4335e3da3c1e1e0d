//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	path string
	prod map[string]string
	dev  map[string]string
}

// NewManifestBuilder creates a new, empty manifest builder.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "package.json",
		prod:        map[string]string{},
		dev:         map[string]string{},
	}
}

// WithDependency declares a production dependency.
func (b *ManifestBuilder) WithDependency(name, versionRange string) *ManifestBuilder {
	b.prod[name] = versionRange
	return b
}

// WithDevDependency declares a development dependency.
func (b *ManifestBuilder) WithDevDependency(name, versionRange string) *ManifestBuilder {
	b.dev[name] = versionRange
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	return &entities.Manifest{
		Path:            b.path,
		Dependencies:    maps.Clone(b.prod),
		DevDependencies: maps.Clone(b.dev),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "package.json"
	b.prod = map[string]string{}
	b.dev = map[string]string{}
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		prod:        maps.Clone(b.prod),
		dev:         maps.Clone(b.dev),
	}
}
