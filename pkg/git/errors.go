// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrCommandFailed       = errors.New("git command failed")
	ErrMainBranchNotFound  = errors.New("cannot detect main branch (tried main, master)")
	ErrRepositoryRootEmpty = errors.New("git rev-parse --show-toplevel returned empty output")
)
