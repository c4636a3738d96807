package git

// FetchPrune fetches all remotes and prunes deleted remote branches.
func (g *realGit) FetchPrune(repoPath string) error {
	_, err := g.run(repoPath, "fetch", "--prune")
	return err
}
