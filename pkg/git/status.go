package git

// Status executes `git status --porcelain` in specified directory.
func (g *realGit) Status(workDir string) (string, error) {
	return g.run(workDir, "status", "--porcelain")
}

// IsDirty checks if the worktree has uncommitted changes.
func (g *realGit) IsDirty(worktreePath string) (bool, error) {
	status, err := g.Status(worktreePath)
	if err != nil {
		return false, err
	}
	return status != "", nil
}
