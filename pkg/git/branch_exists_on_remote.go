package git

// BranchExistsOnRemote checks if a branch exists on a specific remote.
func (g *realGit) BranchExistsOnRemote(params BranchExistsOnRemoteParams) (bool, error) {
	remote := params.RemoteName
	if remote == "" {
		remote = DefaultRemote
	}

	output, err := g.run(params.RepoPath, "ls-remote", "--heads", remote, params.Branch)
	if err != nil {
		return false, err
	}
	return output != "", nil
}
