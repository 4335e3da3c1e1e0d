package entities

import (
	"bufio"
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const maxEventLineSize = 4 * 1024 * 1024

// AuditFormat identifies the shape of a manager's "audit --json" output.
type AuditFormat int

const (
	// AuditFormatAdvisoryMap is an object whose "vulnerabilities" field maps a
	// package name to its advisory (npm, pnpm with the audit plugin).
	AuditFormatAdvisoryMap AuditFormat = iota
	// AuditFormatAdvisoryEvents is newline-delimited JSON with "auditAdvisory" events (yarn).
	AuditFormatAdvisoryEvents
)

// Severity ranks a vulnerability from informational to critical.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityInfo:     "info",
	SeverityLow:      "low",
	SeverityModerate: "moderate",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSeverity maps a severity label to a Severity.
func ParseSeverity(raw string) (Severity, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for severity, name := range severityNames {
		if name == needle {
			return severity, true
		}
	}
	return SeverityInfo, false
}

// VulnerabilityRecord is one vulnerable package reported by the audit.
// RecommendedFix is empty when the manager knows no safe upgrade path.
type VulnerabilityRecord struct {
	Name           string
	Severity       Severity
	RecommendedFix string
}

// HasFix reports whether a fix version was recommended.
func (r VulnerabilityRecord) HasFix() bool {
	return r.RecommendedFix != ""
}

// ClassifyVulnerabilities normalizes raw audit output into records sorted by name.
// Malformed entries are dropped and counted in the returned stats.
func ClassifyVulnerabilities(format AuditFormat, raw []byte) ([]VulnerabilityRecord, ParseStats) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []VulnerabilityRecord{}, ParseStats{}
	}
	switch format {
	case AuditFormatAdvisoryEvents:
		return classifyAdvisoryEvents(raw)
	default:
		return classifyAdvisoryMap(raw)
	}
}

type advisoryReport struct {
	Vulnerabilities map[string]json.RawMessage `json:"vulnerabilities"`
}

type advisoryEntry struct {
	Name         string          `json:"name"`
	Severity     string          `json:"severity"`
	FixAvailable json.RawMessage `json:"fixAvailable"`
}

type fixDetail struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func classifyAdvisoryMap(raw []byte) ([]VulnerabilityRecord, ParseStats) {
	stats := ParseStats{}
	var report advisoryReport
	if err := json.Unmarshal(raw, &report); err != nil {
		stats.drop()
		return []VulnerabilityRecord{}, stats
	}

	records := make([]VulnerabilityRecord, 0, len(report.Vulnerabilities))
	for name, rawEntry := range report.Vulnerabilities {
		var entry advisoryEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			stats.drop()
			continue
		}
		severity, ok := ParseSeverity(entry.Severity)
		if !ok {
			stats.drop()
			continue
		}
		stats.keep()
		records = append(records, VulnerabilityRecord{
			Name:           name,
			Severity:       severity,
			RecommendedFix: fixVersion(entry.FixAvailable),
		})
	}
	sortVulnerabilities(records)
	return records, stats
}

// fixVersion reads "fixAvailable", which is either a boolean or an object
// carrying the version to install.
func fixVersion(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var detail fixDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return ""
	}
	return detail.Version
}

type advisoryData struct {
	Advisory *struct {
		ModuleName     string `json:"module_name"`
		Severity       string `json:"severity"`
		Recommendation string `json:"recommendation"`
	} `json:"advisory"`
}

func classifyAdvisoryEvents(raw []byte) ([]VulnerabilityRecord, ParseStats) {
	stats := ParseStats{}
	byName := make(map[string]VulnerabilityRecord)

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxEventLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		// every line must be a single event object; arrays and garbage are dropped
		var event streamEvent
		if err := json.Unmarshal(line, &event); err != nil {
			stats.drop()
			continue
		}
		if event.Type != "auditAdvisory" {
			continue
		}
		var data advisoryData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			stats.drop()
			continue
		}
		advisory := data.Advisory
		if advisory == nil || advisory.ModuleName == "" {
			stats.drop()
			continue
		}
		severity, ok := ParseSeverity(advisory.Severity)
		if !ok {
			stats.drop()
			continue
		}
		stats.keep()

		fix, _ := ExtractVersion(advisory.Recommendation)
		record := VulnerabilityRecord{Name: advisory.ModuleName, Severity: severity, RecommendedFix: fix}
		if existing, seen := byName[record.Name]; seen && existing.Severity >= record.Severity {
			continue
		}
		byName[record.Name] = record
	}

	records := make([]VulnerabilityRecord, 0, len(byName))
	for _, record := range byName {
		records = append(records, record)
	}
	sortVulnerabilities(records)
	return records, stats
}

func sortVulnerabilities(records []VulnerabilityRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
}

var versionPattern = regexp.MustCompile(`\b(\d+\.\d+\.\d+)\b`)

// ExtractVersion pulls the first MAJOR.MINOR.PATCH version out of a free-text
// recommendation such as "Upgrade to version 1.2.3 or later".
func ExtractVersion(text string) (string, bool) {
	match := versionPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	version, err := semver.StrictNewVersion(match[1])
	if err != nil {
		return "", false
	}
	return version.String(), true
}
