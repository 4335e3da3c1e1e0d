//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// OutdatedRecordBuilder helps create test outdated records with a fluent interface.
type OutdatedRecordBuilder struct {
	*testkit.BaseBuilder
	name    string
	current string
	wanted  string
	latest  string
	kind    entities.DependencyKind
}

// NewOutdatedRecordBuilder creates a new outdated record builder with sensible defaults.
func NewOutdatedRecordBuilder() *OutdatedRecordBuilder {
	return &OutdatedRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		current:     "1.0.0",
		wanted:      "1.0.1",
		latest:      "2.0.0",
		kind:        entities.KindProduction,
	}
}

// WithName sets the package name.
func (b *OutdatedRecordBuilder) WithName(name string) *OutdatedRecordBuilder {
	b.name = name
	return b
}

// WithCurrent sets the installed version.
func (b *OutdatedRecordBuilder) WithCurrent(version string) *OutdatedRecordBuilder {
	b.current = version
	return b
}

// WithWanted sets the highest version satisfying the manifest range.
func (b *OutdatedRecordBuilder) WithWanted(version string) *OutdatedRecordBuilder {
	b.wanted = version
	return b
}

// WithLatest sets the newest published version.
func (b *OutdatedRecordBuilder) WithLatest(version string) *OutdatedRecordBuilder {
	b.latest = version
	return b
}

// WithKind sets the dependency kind.
func (b *OutdatedRecordBuilder) WithKind(kind entities.DependencyKind) *OutdatedRecordBuilder {
	b.kind = kind
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *OutdatedRecordBuilder) Build() interface{} {
	return b.BuildOutdatedRecord()
}

// BuildOutdatedRecord creates the record with a concrete return type.
func (b *OutdatedRecordBuilder) BuildOutdatedRecord() entities.OutdatedRecord {
	return entities.OutdatedRecord{
		Name:       b.name,
		Current:    b.current,
		Wanted:     b.wanted,
		Latest:     b.latest,
		Kind:       b.kind,
		UpdateType: entities.ClassifyUpdate(b.current, b.latest),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.current = "1.0.0"
	b.wanted = "1.0.1"
	b.latest = "2.0.0"
	b.kind = entities.KindProduction
	return b
}

// Clone creates a deep copy of the OutdatedRecordBuilder.
func (b *OutdatedRecordBuilder) Clone() testkit.Builder {
	return &OutdatedRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		current:     b.current,
		wanted:      b.wanted,
		latest:      b.latest,
		kind:        b.kind,
	}
}
