package git

import "strings"

// MergedBranches lists local branches merged into ref, ref itself excluded.
func (g *realGit) MergedBranches(repoPath, ref string) ([]string, error) {
	output, err := g.run(repoPath, "branch", "--merged", ref)
	if err != nil {
		return nil, err
	}
	return parseBranchList(output, ref), nil
}

// parseBranchList parses `git branch` output. The current branch is marked
// with "*" and branches checked out in other worktrees with "+".
func parseBranchList(output, exclude string) []string {
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "* ")
		name = strings.TrimPrefix(name, "+ ")
		name = strings.TrimSpace(name)
		if name == "" || name == exclude {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}
