package git

import "errors"

// RefExists checks if a fully qualified reference resolves.
func (g *realGit) RefExists(repoPath, ref string) (bool, error) {
	_, err := g.run(repoPath, "rev-parse", "--verify", "--quiet", ref)
	if errors.Is(err, ErrCommandFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// BranchExists checks if a branch exists locally.
func (g *realGit) BranchExists(repoPath, branch string) (bool, error) {
	return g.RefExists(repoPath, headsPrefix+branch)
}
