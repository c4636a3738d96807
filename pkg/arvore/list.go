package arvore

import "fmt"

// ListWorktrees lists the worktrees of the repository with their dirtiness.
// Dirtiness is only probed for non-bare worktrees whose directory exists, and
// a failing probe counts as clean.
func (a *realArvore) ListWorktrees() ([]WorktreeStatus, error) {
	repo, err := a.openRepository()
	if err != nil {
		return nil, err
	}

	a.VerbosePrint("Listing worktrees")

	worktrees, err := a.deps.Git.ListWorktrees(repo.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	result := make([]WorktreeStatus, 0, len(worktrees))
	for _, wt := range worktrees {
		status := WorktreeStatus{WorktreeInfo: wt}
		if !wt.IsBare && a.pathExists(wt.Path) {
			status.Dirty = a.isDirty(wt.Path)
		}
		result = append(result, status)
	}

	return result, nil
}

// isDirty probes a worktree, treating errors as clean.
func (a *realArvore) isDirty(path string) bool {
	dirty, err := a.deps.Git.IsDirty(path)
	if err != nil {
		a.VerbosePrint("Failed to get status of %s: %v", path, err)
		return false
	}
	return dirty
}
