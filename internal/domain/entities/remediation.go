package entities

import "strings"

// RemediationMode selects which version a remediation action targets.
type RemediationMode int

const (
	// ModeWanted upgrades outdated packages to the highest version satisfying the manifest range.
	ModeWanted RemediationMode = iota
	// ModeLatest upgrades to the newest published version.
	ModeLatest
	// ModeFixOnly upgrades vulnerable packages to the version recommended by the audit.
	ModeFixOnly
)

func (m RemediationMode) String() string {
	switch m {
	case ModeWanted:
		return "wanted"
	case ModeLatest:
		return "latest"
	case ModeFixOnly:
		return "fix"
	default:
		return "unknown"
	}
}

// LatestTag is the dist-tag installed when a vulnerability is remediated in latest mode.
const LatestTag = "latest"

// RemediationOutcome is the lifecycle state of a RemediationAction.
type RemediationOutcome string

const (
	OutcomePending           RemediationOutcome = "pending"
	OutcomeApplied           RemediationOutcome = "applied"
	OutcomeSkippedTransitive RemediationOutcome = "skipped-transitive"
	OutcomeSkippedNoFix      RemediationOutcome = "skipped-no-fix"
	OutcomeFailed            RemediationOutcome = "failed"
)

// RemediationAction is a single install/add command planned for one package.
// It only lives for the duration of one remediation pass.
type RemediationAction struct {
	Name          string
	TargetVersion string
	DevFlag       bool
	Args          []string // arguments passed to the manager binary
	Command       string   // human-readable command line
	Outcome       RemediationOutcome
	Detail        string
}

// Executable reports whether the action carries a command to dispatch.
func (a RemediationAction) Executable() bool {
	return a.Outcome == OutcomePending && len(a.Args) > 0
}

// PlanOutdated builds the action for an outdated record. ModeLatest targets
// record.Latest; every other mode targets record.Wanted.
func PlanOutdated(
	record OutdatedRecord,
	declared DeclaredSets,
	mode RemediationMode,
	profile ManagerProfile,
) RemediationAction {
	target := record.Wanted
	if mode == ModeLatest {
		target = record.Latest
	}
	return plan(record.Name, target, declared, profile)
}

// PlanVulnerability builds the action for a vulnerability record. ModeLatest
// targets the "latest" tag; every other mode targets the recommended fix.
func PlanVulnerability(
	record VulnerabilityRecord,
	declared DeclaredSets,
	mode RemediationMode,
	profile ManagerProfile,
) RemediationAction {
	if mode == ModeLatest {
		return plan(record.Name, LatestTag, declared, profile)
	}
	if !record.HasFix() {
		return RemediationAction{
			Name:    record.Name,
			Outcome: OutcomeSkippedNoFix,
			Detail:  "no fix version recommended by the audit",
		}
	}
	return plan(record.Name, record.RecommendedFix, declared, profile)
}

// plan resolves the scope of name. Development dependencies get the manager's
// dev flag, production dependencies get none, and anything else is transitive
// and is never installed directly so the manifest stays in sync with the lockfile.
func plan(name, target string, declared DeclaredSets, profile ManagerProfile) RemediationAction {
	action := RemediationAction{
		Name:          name,
		TargetVersion: target,
		Outcome:       OutcomePending,
	}

	flag := ""
	switch {
	case declared.Development.Has(name):
		flag = profile.DevFlag
		action.DevFlag = true
	case !declared.Production.Has(name):
		action.Outcome = OutcomeSkippedTransitive
		action.Detail = "not a direct dependency"
		return action
	}

	spec := name + "@" + target
	action.Args = []string{profile.InstallVerb, spec}
	if flag != "" {
		action.Args = append(action.Args, flag)
	}
	action.Command = strings.TrimSpace(profile.Binary + " " + profile.InstallVerb + " " + spec + " " + flag)
	return action
}
