package repositories

// WorkspaceRepository inspects the version-control state of a project.
type WorkspaceRepository interface {
	// HasUncommittedChanges reports whether relPath (relative to projectDir) is
	// modified or staged. Projects outside version control report false.
	HasUncommittedChanges(projectDir, relPath string) (bool, error)
}
