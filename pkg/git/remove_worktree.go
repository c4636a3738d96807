package git

// RemoveWorktree removes a worktree from Git's tracking.
func (g *realGit) RemoveWorktree(repoPath, worktreePath string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, worktreePath)

	_, err := g.run(repoPath, args...)
	return err
}

// PruneWorktrees prunes stale worktree administrative files.
func (g *realGit) PruneWorktrees(repoPath string) error {
	_, err := g.run(repoPath, "worktree", "prune")
	return err
}
