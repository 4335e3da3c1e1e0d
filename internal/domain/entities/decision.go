package entities

import "fmt"

// Workflow is one of the three user-facing reconciliation workflows.
type Workflow string

const (
	WorkflowScan    Workflow = "scan"
	WorkflowAnalyze Workflow = "analyze"
	WorkflowClean   Workflow = "clean"
)

// VulnerabilityStrategy is the caller's answer on how to remediate vulnerabilities.
type VulnerabilityStrategy string

const (
	StrategyLatest  VulnerabilityStrategy = "latest"
	StrategyFixOnly VulnerabilityStrategy = "fix"
	StrategyIgnore  VulnerabilityStrategy = "ignore"
)

// ParseVulnerabilityStrategy validates a strategy label.
func ParseVulnerabilityStrategy(raw string) (VulnerabilityStrategy, error) {
	switch strategy := VulnerabilityStrategy(raw); strategy {
	case StrategyLatest, StrategyFixOnly, StrategyIgnore:
		return strategy, nil
	default:
		return "", fmt.Errorf("invalid vulnerability strategy %q (expected latest, fix or ignore)", raw)
	}
}

// Mode maps the strategy to a remediation mode. Ignore has no mode.
func (s VulnerabilityStrategy) Mode() (RemediationMode, bool) {
	switch s {
	case StrategyLatest:
		return ModeLatest, true
	case StrategyFixOnly:
		return ModeFixOnly, true
	default:
		return 0, false
	}
}
