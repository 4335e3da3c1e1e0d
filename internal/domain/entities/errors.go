package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrManifestMissing is returned when the project has no manifest at its root.
	ErrManifestMissing = errors.New("project manifest not found")

	// ErrManifestFormat is returned when the manifest cannot be decoded or
	// declares the same name in both scopes.
	ErrManifestFormat = errors.New("invalid project manifest")

	// ErrManagerInvocation wraps every failed package manager subprocess.
	ErrManagerInvocation = errors.New("package manager invocation failed")

	// ErrUnknownManager is returned when a manager name is not registered.
	ErrUnknownManager = errors.New("unknown package manager")

	// ErrDecisionUnavailable is returned when a non-interactive caller has no
	// answer configured for a mandatory decision.
	ErrDecisionUnavailable = errors.New("no answer available for decision")
)

// InvocationError describes a package manager subprocess that exited with a
// status the adapter does not accept.
type InvocationError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("%q exited with code %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap lets callers match the error with errors.Is(err, ErrManagerInvocation).
func (e *InvocationError) Unwrap() error {
	return ErrManagerInvocation
}
