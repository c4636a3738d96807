package git

import "errors"

// GetRepositoryRoot executes `git rev-parse --show-toplevel` in specified directory.
func (g *realGit) GetRepositoryRoot(workDir string) (string, error) {
	output, err := g.run(workDir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	if output == "" {
		return "", ErrRepositoryRootEmpty
	}
	return output, nil
}

// IsInsideWorkTree checks if the directory is inside a Git work tree.
func (g *realGit) IsInsideWorkTree(workDir string) (bool, error) {
	output, err := g.run(workDir, "rev-parse", "--is-inside-work-tree")
	if errors.Is(err, ErrCommandFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return output == "true", nil
}
