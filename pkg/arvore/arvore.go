package arvore

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/arvore/pkg/config"
	"github.com/lerenn/arvore/pkg/dependencies"
	"github.com/lerenn/arvore/pkg/logger"
)

// Arvore interface provides the worktree operations of a single repository.
type Arvore interface {
	// CreateWorktree creates the worktree of branch, optionally opening it.
	CreateWorktree(branch string, opts ...CreateWorktreeOpts) (CreateWorktreeResult, error)
	// ListWorktrees lists the worktrees of the repository with their dirtiness.
	ListWorktrees() ([]WorktreeStatus, error)
	// RemoveWorktree removes the worktree designated by a branch name or an absolute path.
	RemoveWorktree(target string, force bool) error
	// OpenWorktree opens the worktree of branch in external applications and
	// returns the names of the applications launched.
	OpenWorktree(branch string, opts ...OpenWorktreeOpts) ([]string, error)
	// WorktreePath returns the path of the worktree of branch and whether it exists.
	WorktreePath(branch string) (string, bool, error)
	// Clean removes worktrees whose branch is merged or deleted on the remote.
	Clean(opts ...CleanOpts) (CleanResult, error)
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewArvoreParams contains parameters for creating a new Arvore instance.
type NewArvoreParams struct {
	Dependencies *dependencies.Dependencies
	// WorkDir is the directory the repository is detected from, "." when empty.
	WorkDir string
}

type realArvore struct {
	deps    *dependencies.Dependencies
	workDir string
}

// repository is the repository an operation runs against.
type repository struct {
	root string
	name string
	cfg  config.Config
}

// NewArvore creates a new Arvore instance.
func NewArvore(params NewArvoreParams) (Arvore, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	workDir := params.WorkDir
	if workDir == "" {
		workDir = "."
	}

	return &realArvore{
		deps:    deps,
		workDir: workDir,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (a *realArvore) VerbosePrint(msg string, args ...interface{}) {
	if a.deps.Logger != nil {
		a.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Arvore instance.
func (a *realArvore) SetLogger(logger logger.Logger) {
	a.deps.Logger = logger
}

// ensureRepository checks that the working directory is inside a git work tree.
func (a *realArvore) ensureRepository() error {
	inside, err := a.deps.Git.IsInsideWorkTree(a.workDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	if !inside {
		return ErrNotARepository
	}
	return nil
}

// openRepository detects the repository and loads the configuration.
func (a *realArvore) openRepository() (repository, error) {
	if err := a.ensureRepository(); err != nil {
		return repository{}, err
	}

	root, err := a.deps.Git.GetRepositoryRoot(a.workDir)
	if err != nil {
		return repository{}, fmt.Errorf("failed to get repository root: %w", err)
	}

	cfg, err := a.deps.Config.GetConfig()
	if err != nil {
		return repository{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	repo := repository{
		root: root,
		name: filepath.Base(root),
		cfg:  cfg,
	}
	a.VerbosePrint("Repository %s at %s, worktree base %s", repo.name, repo.root, cfg.WorktreeBase)

	return repo, nil
}

// worktreePath returns where the worktree of branch lives.
func (r repository) worktreePath(branch string) string {
	return r.cfg.WorktreePath(r.name, branch)
}

// pathExists reports whether path exists, treating probe errors as absence.
func (a *realArvore) pathExists(path string) bool {
	exists, err := a.deps.FS.Exists(path)
	if err != nil {
		a.VerbosePrint("Failed to check %s: %v", path, err)
		return false
	}
	return exists
}
