package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// GetRepositoryRoot executes `git rev-parse --show-toplevel` in specified directory.
	GetRepositoryRoot(workDir string) (string, error)

	// IsInsideWorkTree checks if the directory is inside a Git work tree.
	IsInsideWorkTree(workDir string) (bool, error)

	// ListWorktrees lists the worktrees of the repository, main worktree first.
	ListWorktrees(repoPath string) ([]WorktreeInfo, error)

	// AddWorktree creates a worktree, optionally on a new branch.
	AddWorktree(params AddWorktreeParams) error

	// RemoveWorktree removes a worktree from Git's tracking.
	RemoveWorktree(repoPath, worktreePath string, force bool) error

	// PruneWorktrees prunes stale worktree administrative files.
	PruneWorktrees(repoPath string) error

	// Status executes `git status --porcelain` in specified directory.
	Status(workDir string) (string, error)

	// IsDirty checks if the worktree has uncommitted changes.
	IsDirty(worktreePath string) (bool, error)

	// FetchPrune fetches all remotes and prunes deleted remote branches.
	FetchPrune(repoPath string) error

	// MergedBranches lists local branches merged into ref, ref itself excluded.
	MergedBranches(repoPath, ref string) ([]string, error)

	// RefExists checks if a fully qualified reference resolves.
	RefExists(repoPath, ref string) (bool, error)

	// BranchExists checks if a branch exists locally.
	BranchExists(repoPath, branch string) (bool, error)

	// BranchExistsOnRemote checks if a branch exists on a specific remote.
	BranchExistsOnRemote(params BranchExistsOnRemoteParams) (bool, error)

	// GetMainBranch detects the main branch of the repository.
	GetMainBranch(repoPath string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
