//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

func TestExtractVersion(t *testing.T) {
	t.Parallel()

	t.Run("should extract the version from a recommendation", func(t *testing.T) {
		t.Parallel()

		// given
		text := "upgrade to 1.2.3"

		// when
		version, ok := entities.ExtractVersion(text)

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.2.3", version)
	})

	t.Run("should report absence when no version is present", func(t *testing.T) {
		t.Parallel()

		// given
		text := "no fix available"

		// when
		version, ok := entities.ExtractVersion(text)

		// then
		assert.False(t, ok)
		assert.Empty(t, version)
	})

	t.Run("should take the first version when several are present", func(t *testing.T) {
		t.Parallel()

		// given
		text := "Upgrade to version 4.17.21 or later (4.17.20 is affected)"

		// when
		version, ok := entities.ExtractVersion(text)

		// then
		assert.True(t, ok)
		assert.Equal(t, "4.17.21", version)
	})

	t.Run("should ignore two-part versions", func(t *testing.T) {
		t.Parallel()

		// given
		text := "Upgrade to 2.0 when released"

		// when
		_, ok := entities.ExtractVersion(text)

		// then
		assert.False(t, ok)
	})
}

func TestClassifyVulnerabilities(t *testing.T) {
	t.Parallel()

	t.Run("should classify an advisory map", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"auditReportVersion":2,"vulnerabilities":{
			"minimist": {"name":"minimist","severity":"critical","fixAvailable":{"name":"minimist","version":"1.2.8","isSemVerMajor":false}},
			"glob-parent": {"name":"glob-parent","severity":"high","fixAvailable":true},
			"nth-check": {"name":"nth-check","severity":"moderate","fixAvailable":false}
		}}`)

		// when
		records, stats := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryMap, raw)

		// then
		assert.Equal(t, []entities.VulnerabilityRecord{
			{Name: "glob-parent", Severity: entities.SeverityHigh},
			{Name: "minimist", Severity: entities.SeverityCritical, RecommendedFix: "1.2.8"},
			{Name: "nth-check", Severity: entities.SeverityModerate},
		}, records)
		assert.Equal(t, 3, stats.Parsed)
		assert.False(t, records[0].HasFix())
		assert.True(t, records[1].HasFix())
	})

	t.Run("should drop entries with an unknown severity", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"vulnerabilities":{
			"a": {"severity":"scary"},
			"b": "not an object",
			"c": {"severity":"low"}
		}}`)

		// when
		records, stats := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryMap, raw)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, "c", records[0].Name)
		assert.Equal(t, 2, stats.Dropped)
	})

	t.Run("should classify advisory events", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"type":"auditAdvisory","data":{"resolution":{"id":1},"advisory":{"module_name":"minimist","severity":"critical","recommendation":"Upgrade to version 1.2.6 or later"}}}
{"type":"auditAdvisory","data":{"advisory":{"module_name":"request","severity":"moderate","recommendation":"None"}}}
{"type":"auditSummary","data":{"vulnerabilities":{"critical":1}}}
`)

		// when
		records, stats := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryEvents, raw)

		// then
		assert.Equal(t, []entities.VulnerabilityRecord{
			{Name: "minimist", Severity: entities.SeverityCritical, RecommendedFix: "1.2.6"},
			{Name: "request", Severity: entities.SeverityModerate},
		}, records)
		assert.Equal(t, 2, stats.Parsed)
		assert.Zero(t, stats.Dropped)
	})

	t.Run("should collapse duplicate advisories to the highest severity", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"type":"auditAdvisory","data":{"advisory":{"module_name":"lodash","severity":"low","recommendation":"Upgrade to version 4.17.12"}}}
{"type":"auditAdvisory","data":{"advisory":{"module_name":"lodash","severity":"high","recommendation":"Upgrade to version 4.17.21"}}}
{"type":"auditAdvisory","data":{"advisory":{"module_name":"lodash","severity":"moderate","recommendation":"Upgrade to version 4.17.19"}}}
`)

		// when
		records, _ := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryEvents, raw)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, entities.SeverityHigh, records[0].Severity)
		assert.Equal(t, "4.17.21", records[0].RecommendedFix)
	})

	t.Run("should drop array lines and advisories without a module", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`[{"type":"auditAdvisory"}]
{"type":"auditAdvisory","data":{}}
{"type":"auditAdvisory","data":{"advisory":{"severity":"high"}}}
{"type":"auditAdvisory","data":{"advisory":{"module_name":"ws","severity":"high","recommendation":"Upgrade to version 7.4.6"}}}
`)

		// when
		records, stats := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryEvents, raw)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, "ws", records[0].Name)
		assert.Equal(t, 3, stats.Dropped)
	})

	t.Run("should skip events carrying a plain string without counting them", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte(`{"type":"warning","data":"package.json: No license field"}
{"type":"info","data":"Auditing packages"}
{"type":"auditAdvisory","data":{"advisory":{"module_name":"ws","severity":"high","recommendation":"Upgrade to version 7.4.6"}}}
{"type":"auditSummary","data":{"vulnerabilities":{"high":1}}}
`)

		// when
		records, stats := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryEvents, raw)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, "7.4.6", records[0].RecommendedFix)
		assert.Equal(t, 1, stats.Parsed)
		assert.Zero(t, stats.Dropped)
	})

	t.Run("should return an empty list for empty output", func(t *testing.T) {
		t.Parallel()

		// given
		var raw []byte

		// when
		records, stats := entities.ClassifyVulnerabilities(entities.AuditFormatAdvisoryMap, raw)

		// then
		assert.NotNil(t, records)
		assert.Empty(t, records)
		assert.Zero(t, stats.Dropped)
	})
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	t.Run("should parse labels case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		raw := " HIGH "

		// when
		severity, ok := entities.ParseSeverity(raw)

		// then
		assert.True(t, ok)
		assert.Equal(t, entities.SeverityHigh, severity)
		assert.Equal(t, "high", severity.String())
	})

	t.Run("should rank critical above every other severity", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Greater(t, entities.SeverityCritical, entities.SeverityHigh)
		assert.Greater(t, entities.SeverityHigh, entities.SeverityModerate)
		assert.Greater(t, entities.SeverityLow, entities.SeverityInfo)
	})
}
