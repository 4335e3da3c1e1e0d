package commands

import "io"

// DetectLocalPackageManager exports detectLocalPackageManager for testing.
var DetectLocalPackageManager = detectLocalPackageManager //nolint:gochecknoglobals // test export

// ApplyActions exports applyActions for testing.
var ApplyActions = applyActions //nolint:gochecknoglobals // test export

// SetOutput redirects the tables printed by the analyze workflow.
func (it *AnalyzeCommand) SetOutput(w io.Writer) {
	it.output = w
}
