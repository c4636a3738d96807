// Package arvore orchestrates the worktree operations of the arvore command line.
package arvore

import "errors"

// Error definitions for arvore package.
var (
	// ErrNotARepository is returned when the working directory is outside a git work tree.
	ErrNotARepository = errors.New("not inside a git repository")

	// ErrWorktreeNotFound is returned when the requested worktree is not known to git
	// or its directory does not exist.
	ErrWorktreeNotFound = errors.New("worktree not found")

	// ErrDirtyWorktree is returned when removing a worktree with uncommitted changes.
	ErrDirtyWorktree = errors.New("worktree has uncommitted changes (use --force to remove)")

	// ErrBranchNameEmpty is returned when an operation is given an empty branch name.
	ErrBranchNameEmpty = errors.New("branch name cannot be empty")
)
