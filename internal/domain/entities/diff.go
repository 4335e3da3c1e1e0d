package entities

// DiffResult is the outcome of comparing declared names against the install tree.
type DiffResult struct {
	Missing        []string // declared but not installed, sorted
	DeclaredCount  int
	InstalledCount int
}

// HasMissing reports whether any declared dependency is absent from the install tree.
func (r DiffResult) HasMissing() bool {
	return len(r.Missing) > 0
}

// CardinalityMatches reports whether both sets had the same size.
func (r DiffResult) CardinalityMatches() bool {
	return r.DeclaredCount == r.InstalledCount
}

// Diff computes declared − installed. Installed names that were never declared
// (hoisted or transitive packages) are expected and not reported.
func Diff(declared, installed NameSet) DiffResult {
	return DiffResult{
		Missing:        declared.Difference(installed).Sorted(),
		DeclaredCount:  declared.Len(),
		InstalledCount: installed.Len(),
	}
}
