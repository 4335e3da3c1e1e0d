package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdoctor/internal/domain/repositories"
)

// GitWorkspaceRepository reads the working tree status of the repository
// enclosing a project.
type GitWorkspaceRepository struct{}

// NewGitWorkspaceRepository creates a new GitWorkspaceRepository.
func NewGitWorkspaceRepository() repositories.WorkspaceRepository {
	return &GitWorkspaceRepository{}
}

func (it *GitWorkspaceRepository) HasUncommittedChanges(projectDir, relPath string) (bool, error) {
	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", projectDir, err)
	}

	repo, err := gogit.PlainOpenWithOptions(absDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			logger.Debugf("%s is not inside a git repository", absDir)
			return false, nil
		}
		return false, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	target, err := filepath.Rel(worktree.Filesystem.Root(), filepath.Join(absDir, relPath))
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s in worktree: %w", relPath, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	// status.File would register an untracked entry for unknown paths
	fileStatus, ok := status[filepath.ToSlash(target)]
	if !ok {
		return false, nil
	}
	return fileStatus.Staging != gogit.Unmodified || fileStatus.Worktree != gogit.Unmodified, nil
}
