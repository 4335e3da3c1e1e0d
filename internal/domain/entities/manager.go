package entities

import "strings"

const (
	ManagerNpm  = "npm"
	ManagerYarn = "yarn"
	ManagerPnpm = "pnpm"

	// InstallTreeDir is the directory every supported manager installs into.
	InstallTreeDir = "node_modules"
)

// ManagerProfile describes the command-line dialect and output formats of one
// package manager.
type ManagerProfile struct {
	Name           string
	Binary         string
	InstallVerb    string // "install" or "add"
	DevFlag        string // "--save-dev", "--dev" or "-D"
	Lockfile       string
	OutdatedFormat OutdatedFormat
	AuditFormat    AuditFormat
}

// AuxiliaryTool is an extra package some managers need before they can audit.
// Installing it mutates the project, so callers must confirm it first.
type AuxiliaryTool struct {
	Package     string
	InstallArgs []string
}

// ProcessResult is the outcome of one subprocess invocation.
type ProcessResult struct {
	Command  string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandLine renders a binary and its arguments the way a user would type them.
func CommandLine(binary string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, binary)
	for _, arg := range args {
		if arg != "" {
			parts = append(parts, arg)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
