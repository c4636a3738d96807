package git

// AddWorktree creates a worktree, optionally on a new branch.
func (g *realGit) AddWorktree(params AddWorktreeParams) error {
	args := []string{"worktree", "add", params.WorktreePath}
	if params.NewBranch {
		args = append(args, "-b", params.Branch)
		if params.BaseRef != "" {
			args = append(args, params.BaseRef)
		}
	} else {
		args = append(args, params.Branch)
	}

	_, err := g.run(params.RepoPath, args...)
	return err
}
