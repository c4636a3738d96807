package arvore

import (
	"fmt"
	"path/filepath"
)

// RemoveWorktree removes the worktree designated by target, an absolute path
// or a branch name. Without force, a worktree with uncommitted changes is kept.
func (a *realArvore) RemoveWorktree(target string, force bool) error {
	if target == "" {
		return ErrBranchNameEmpty
	}

	repo, err := a.openRepository()
	if err != nil {
		return err
	}

	worktreePath := a.resolveTarget(repo, target)
	a.VerbosePrint("Removing worktree %s (force: %t)", worktreePath, force)

	found, err := a.isListed(repo, worktreePath)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrWorktreeNotFound, target)
	}

	if !force && a.pathExists(worktreePath) {
		dirty, err := a.deps.Git.IsDirty(worktreePath)
		if err != nil {
			return fmt.Errorf("failed to check worktree status: %w", err)
		}
		if dirty {
			return fmt.Errorf("%w: %s", ErrDirtyWorktree, target)
		}
	}

	if err := a.deps.Git.RemoveWorktree(repo.root, worktreePath, force); err != nil {
		return fmt.Errorf("failed to remove worktree: %w", err)
	}

	if err := a.deps.Git.PruneWorktrees(repo.root); err != nil {
		return fmt.Errorf("failed to prune worktrees: %w", err)
	}

	a.cleanupParent(worktreePath)

	return nil
}

// resolveTarget uses an existing absolute path as-is and maps anything else
// through the worktree layout.
func (a *realArvore) resolveTarget(repo repository, target string) string {
	if filepath.IsAbs(target) && a.pathExists(target) {
		return target
	}
	return repo.worktreePath(target)
}

// isListed reports whether git knows a worktree at path.
// Paths are compared after cleaning and resolving symlinks.
func (a *realArvore) isListed(repo repository, path string) (bool, error) {
	worktrees, err := a.deps.Git.ListWorktrees(repo.root)
	if err != nil {
		return false, fmt.Errorf("failed to list worktrees: %w", err)
	}

	wanted := a.normalizePath(path)
	for _, wt := range worktrees {
		if a.normalizePath(wt.Path) == wanted {
			return true, nil
		}
	}
	return false, nil
}

// normalizePath cleans path and resolves its symlinks when possible.
func (a *realArvore) normalizePath(path string) string {
	resolved, err := a.deps.FS.ResolvePath(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return resolved
}

// cleanupParent removes the parent directory of a removed worktree when it is empty.
func (a *realArvore) cleanupParent(worktreePath string) {
	parent := filepath.Dir(worktreePath)
	removed, err := a.deps.FS.RemoveIfEmpty(parent)
	if err != nil {
		a.VerbosePrint("Failed to remove %s: %v", parent, err)
		return
	}
	if removed {
		a.VerbosePrint("Removed empty directory %s", parent)
	}
}
