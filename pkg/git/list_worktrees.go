package git

// ListWorktrees lists the worktrees of the repository, main worktree first.
func (g *realGit) ListWorktrees(repoPath string) ([]WorktreeInfo, error) {
	output, err := g.run(repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseWorktreePorcelain(output), nil
}
