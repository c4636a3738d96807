package git

// mainBranchCandidates are probed in order; the first resolving ref wins.
var mainBranchCandidates = []struct {
	ref    string
	branch string
}{
	{headsPrefix + "main", "main"},
	{headsPrefix + "master", "master"},
	{"refs/remotes/" + DefaultRemote + "/main", "main"},
	{"refs/remotes/" + DefaultRemote + "/master", "master"},
}

// GetMainBranch detects the main branch of the repository.
func (g *realGit) GetMainBranch(repoPath string) (string, error) {
	for _, candidate := range mainBranchCandidates {
		exists, err := g.RefExists(repoPath, candidate.ref)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate.branch, nil
		}
	}
	return "", ErrMainBranchNotFound
}
