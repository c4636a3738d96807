// Package branch provides branch name sanitization functionality.
package branch

import "strings"

// DirName maps a branch name to the single directory name of its worktree.
// Every "/" becomes "-", so "feature/auth" lives in "feature-auth".
// The mapping is not injective: "feat/x" and "feat-x" share a directory.
func DirName(branchName string) string {
	return strings.ReplaceAll(branchName, "/", "-")
}
