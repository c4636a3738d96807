package cleanup

import (
	"fmt"

	"github.com/lerenn/arvore/pkg/git"
)

// SelectCandidatesParams contains the inputs of SelectCandidates.
type SelectCandidatesParams struct {
	Worktrees      []git.WorktreeInfo
	MainBranch     string
	MergedBranches []string

	// RemoteBranchExists reports whether the branch still exists on the remote.
	RemoteBranchExists func(branch string) (bool, error)
	// PathExists reports whether the worktree directory is present.
	PathExists func(path string) bool
	// IsDirty reports whether the worktree has uncommitted changes.
	IsDirty func(path string) (bool, error)
}

// SelectCandidates returns, in listing order, the worktrees whose branch is merged
// into the main branch or no longer exists on the remote.
// Bare entries, detached worktrees and the main branch are never selected.
func SelectCandidates(params SelectCandidatesParams) ([]Candidate, error) {
	merged := make(map[string]struct{}, len(params.MergedBranches))
	for _, b := range params.MergedBranches {
		merged[b] = struct{}{}
	}

	candidates := []Candidate{}
	for _, wt := range params.Worktrees {
		if wt.IsBare || wt.Branch == "" || wt.Branch == params.MainBranch {
			continue
		}

		_, isMerged := merged[wt.Branch]

		onRemote, err := params.RemoteBranchExists(wt.Branch)
		if err != nil {
			return nil, fmt.Errorf("failed to check remote branch %s: %w", wt.Branch, err)
		}

		if !isMerged && onRemote {
			continue
		}

		candidates = append(candidates, Candidate{
			Branch:        wt.Branch,
			Path:          wt.Path,
			Merged:        isMerged,
			RemoteDeleted: !onRemote,
			Dirty:         isDirty(params, wt.Path),
		})
	}

	return candidates, nil
}

// isDirty treats a missing directory or a failing probe as clean.
func isDirty(params SelectCandidatesParams, path string) bool {
	if params.PathExists == nil || !params.PathExists(path) {
		return false
	}
	dirty, err := params.IsDirty(path)
	if err != nil {
		return false
	}
	return dirty
}
