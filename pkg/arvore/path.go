package arvore

// WorktreePath returns the path of the worktree of branch and whether it exists.
func (a *realArvore) WorktreePath(branch string) (string, bool, error) {
	if branch == "" {
		return "", false, ErrBranchNameEmpty
	}

	repo, err := a.openRepository()
	if err != nil {
		return "", false, err
	}

	worktreePath := repo.worktreePath(branch)
	return worktreePath, a.pathExists(worktreePath), nil
}
