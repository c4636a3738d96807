package arvore

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/arvore/pkg/git"
)

// CreateWorktreeOpts contains optional parameters for CreateWorktree.
type CreateWorktreeOpts struct {
	// From creates a new branch starting at this ref.
	From string
	// Open opens the new worktree in every known application.
	Open bool
}

// CreateWorktreeResult describes a created worktree.
type CreateWorktreeResult struct {
	// Path is set as soon as the worktree exists, even when opening it failed.
	Path string
	// Opened holds the display names of the applications the worktree was opened in.
	Opened []string
}

// CreateWorktree creates the worktree of branch.
func (a *realArvore) CreateWorktree(branch string, opts ...CreateWorktreeOpts) (CreateWorktreeResult, error) {
	options := extractCreateWorktreeOptions(opts)

	if branch == "" {
		return CreateWorktreeResult{}, ErrBranchNameEmpty
	}

	repo, err := a.openRepository()
	if err != nil {
		return CreateWorktreeResult{}, err
	}

	worktreePath := repo.worktreePath(branch)
	a.VerbosePrint("Creating worktree for branch %s at %s", branch, worktreePath)

	if err := a.deps.FS.MkdirAll(filepath.Dir(worktreePath), 0o755); err != nil {
		return CreateWorktreeResult{}, fmt.Errorf("failed to create parent directory: %w", err)
	}

	params, err := a.buildAddWorktreeParams(repo, branch, worktreePath, options.From)
	if err != nil {
		return CreateWorktreeResult{}, err
	}

	if err := a.deps.Git.AddWorktree(params); err != nil {
		return CreateWorktreeResult{}, fmt.Errorf("failed to create worktree: %w", err)
	}

	result := CreateWorktreeResult{Path: worktreePath}
	if options.Open {
		result.Opened, err = a.openInApplications(worktreePath, allApplications())
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// buildAddWorktreeParams checks out an existing branch, or creates it when it
// exists neither locally nor on the remote. A base ref always creates a new branch.
func (a *realArvore) buildAddWorktreeParams(
	repo repository,
	branch, worktreePath, from string,
) (git.AddWorktreeParams, error) {
	params := git.AddWorktreeParams{
		RepoPath:     repo.root,
		WorktreePath: worktreePath,
		Branch:       branch,
	}

	if from != "" {
		a.VerbosePrint("Creating branch %s from %s", branch, from)
		params.NewBranch = true
		params.BaseRef = from
		return params, nil
	}

	local, err := a.deps.Git.BranchExists(repo.root, branch)
	if err != nil {
		return params, fmt.Errorf("failed to check local branch: %w", err)
	}

	remote, err := a.deps.Git.BranchExistsOnRemote(git.BranchExistsOnRemoteParams{
		RepoPath:   repo.root,
		RemoteName: git.DefaultRemote,
		Branch:     branch,
	})
	if err != nil {
		return params, fmt.Errorf("failed to check remote branch: %w", err)
	}

	a.VerbosePrint("Branch %s: local=%t remote=%t", branch, local, remote)
	params.NewBranch = !local && !remote

	return params, nil
}

// extractCreateWorktreeOptions merges options, later options overriding earlier ones.
func extractCreateWorktreeOptions(opts []CreateWorktreeOpts) CreateWorktreeOpts {
	var result CreateWorktreeOpts
	for _, opt := range opts {
		if opt.From != "" {
			result.From = opt.From
		}
		if opt.Open {
			result.Open = true
		}
	}
	return result
}
