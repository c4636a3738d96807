package git

import "strings"

// ParseWorktreePorcelain parses the output of `git worktree list --porcelain`.
//
// Records are blocks of keyed lines separated by blank lines:
//
//	worktree /path/to/repo
//	HEAD 1f2e3d4c
//	branch refs/heads/main
//
// Markers other than "bare" (detached, locked, prunable) leave the record
// branchless. The last record is emitted even without a trailing blank line.
func ParseWorktreePorcelain(output string) []WorktreeInfo {
	var (
		worktrees []WorktreeInfo
		current   WorktreeInfo
		hasPath   bool
	)

	flush := func() {
		if hasPath {
			worktrees = append(worktrees, current)
		}
		current = WorktreeInfo{}
		hasPath = false
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			flush()
			continue
		}

		switch {
		case strings.HasPrefix(line, "worktree "):
			current.Path = strings.TrimPrefix(line, "worktree ")
			hasPath = true
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "+headsPrefix):
			current.Branch = strings.TrimPrefix(line, "branch "+headsPrefix)
		case line == "bare":
			current.IsBare = true
		}
	}
	flush()

	return worktrees
}
