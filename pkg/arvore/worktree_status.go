package arvore

import "github.com/lerenn/arvore/pkg/git"

// DetachedLabel is displayed in place of the branch of a detached worktree.
const DetachedLabel = "(detached)"

// shortHeadLength is the number of characters of the commit id displayed.
const shortHeadLength = 8

// WorktreeStatus is a worktree with its dirtiness.
type WorktreeStatus struct {
	git.WorktreeInfo
	Dirty bool
}

// DisplayBranch returns the branch name or "(detached)".
func (w WorktreeStatus) DisplayBranch() string {
	if w.Branch == "" {
		return DetachedLabel
	}
	return w.Branch
}

// ShortHead returns the first eight characters of the head commit.
func (w WorktreeStatus) ShortHead() string {
	if len(w.Head) <= shortHeadLength {
		return w.Head
	}
	return w.Head[:shortHeadLength]
}
