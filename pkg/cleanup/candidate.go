// Package cleanup selects the worktrees that can be removed by the clean command.
package cleanup

import "strings"

// Candidate is a worktree eligible for removal.
type Candidate struct {
	Branch        string
	Path          string
	Merged        bool
	RemoteDeleted bool
	Dirty         bool
}

// Reason describes why the candidate was selected, e.g. "merged + remote deleted".
func (c Candidate) Reason() string {
	reasons := make([]string, 0, 2)
	if c.Merged {
		reasons = append(reasons, "merged")
	}
	if c.RemoteDeleted {
		reasons = append(reasons, "remote deleted")
	}
	return strings.Join(reasons, " + ")
}

// Label is the line shown for the candidate in the selection prompt.
func (c Candidate) Label() string {
	label := c.Branch + " (" + c.Reason() + ")"
	if c.Dirty {
		label += " ⚠ dirty"
	}
	return label
}
