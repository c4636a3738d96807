package git

// WorktreeInfo holds one record of `git worktree list --porcelain`.
type WorktreeInfo struct {
	// Path is the absolute location of the worktree.
	Path string
	// Branch is the short branch name, empty when detached or bare.
	Branch string
	// Head is the full commit identifier.
	Head string
	// IsBare marks the bare administrative entry of the repository.
	IsBare bool
}

// AddWorktreeParams contains parameters for AddWorktree.
type AddWorktreeParams struct {
	RepoPath     string
	WorktreePath string
	Branch       string
	// NewBranch creates Branch with -b instead of checking it out.
	NewBranch bool
	// BaseRef is the start point of a new branch, HEAD when empty.
	BaseRef string
}

// BranchExistsOnRemoteParams contains parameters for BranchExistsOnRemote.
type BranchExistsOnRemoteParams struct {
	RepoPath   string
	RemoteName string
	Branch     string
}
