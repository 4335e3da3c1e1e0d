//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

// VulnerabilityRecordBuilder helps create test vulnerability records with a fluent interface.
type VulnerabilityRecordBuilder struct {
	*testkit.BaseBuilder
	name     string
	severity entities.Severity
	fix      string
}

// NewVulnerabilityRecordBuilder creates a new vulnerability record builder with sensible defaults.
func NewVulnerabilityRecordBuilder() *VulnerabilityRecordBuilder {
	return &VulnerabilityRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		severity:    entities.SeverityHigh,
		fix:         "1.2.3",
	}
}

// WithName sets the package name.
func (b *VulnerabilityRecordBuilder) WithName(name string) *VulnerabilityRecordBuilder {
	b.name = name
	return b
}

// WithSeverity sets the advisory severity.
func (b *VulnerabilityRecordBuilder) WithSeverity(severity entities.Severity) *VulnerabilityRecordBuilder {
	b.severity = severity
	return b
}

// WithFix sets the recommended fix version.
func (b *VulnerabilityRecordBuilder) WithFix(version string) *VulnerabilityRecordBuilder {
	b.fix = version
	return b
}

// WithoutFix clears the recommended fix version.
func (b *VulnerabilityRecordBuilder) WithoutFix() *VulnerabilityRecordBuilder {
	b.fix = ""
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *VulnerabilityRecordBuilder) Build() interface{} {
	return b.BuildVulnerabilityRecord()
}

// BuildVulnerabilityRecord creates the record with a concrete return type.
func (b *VulnerabilityRecordBuilder) BuildVulnerabilityRecord() entities.VulnerabilityRecord {
	return entities.VulnerabilityRecord{
		Name:           b.name,
		Severity:       b.severity,
		RecommendedFix: b.fix,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *VulnerabilityRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.severity = entities.SeverityHigh
	b.fix = "1.2.3"
	return b
}

// Clone creates a deep copy of the VulnerabilityRecordBuilder.
func (b *VulnerabilityRecordBuilder) Clone() testkit.Builder {
	return &VulnerabilityRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		severity:    b.severity,
		fix:         b.fix,
	}
}
