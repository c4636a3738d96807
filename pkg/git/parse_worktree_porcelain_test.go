//go:build unit

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorktreePorcelain(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []WorktreeInfo
	}{
		{
			name:     "empty output",
			output:   "",
			expected: nil,
		},
		{
			name:   "single worktree",
			output: "worktree /path/to/repo\nHEAD abc123def456\nbranch refs/heads/main\n\n",
			expected: []WorktreeInfo{
				{Path: "/path/to/repo", Head: "abc123def456", Branch: "main"},
			},
		},
		{
			name: "multiple worktrees keep git ordering",
			output: "worktree /path/to/repo\nHEAD abc123def456\nbranch refs/heads/main\n\n" +
				"worktree /path/to/wt1\nHEAD def456abc789\nbranch refs/heads/feature-x\n\n",
			expected: []WorktreeInfo{
				{Path: "/path/to/repo", Head: "abc123def456", Branch: "main"},
				{Path: "/path/to/wt1", Head: "def456abc789", Branch: "feature-x"},
			},
		},
		{
			name:   "bare repository",
			output: "worktree /path/to/repo\nHEAD abc123def456\nbare\n\n",
			expected: []WorktreeInfo{
				{Path: "/path/to/repo", Head: "abc123def456", IsBare: true},
			},
		},
		{
			name:   "detached head",
			output: "worktree /path/to/repo\nHEAD abc123def456\ndetached\n\n",
			expected: []WorktreeInfo{
				{Path: "/path/to/repo", Head: "abc123def456"},
			},
		},
		{
			name:   "no trailing newline",
			output: "worktree /path/to/repo\nHEAD abc123def456\nbranch refs/heads/main",
			expected: []WorktreeInfo{
				{Path: "/path/to/repo", Head: "abc123def456", Branch: "main"},
			},
		},
		{
			name:   "nested branch name keeps slashes",
			output: "worktree /wt/feature-auth\nHEAD 0123456789\nbranch refs/heads/feature/auth\n",
			expected: []WorktreeInfo{
				{Path: "/wt/feature-auth", Head: "0123456789", Branch: "feature/auth"},
			},
		},
		{
			name: "fields do not leak into the next record",
			output: "worktree /a\nHEAD 111\nbranch refs/heads/one\n\n" +
				"worktree /b\nHEAD 222\ndetached\nlocked\n\n" +
				"worktree /c\nHEAD 333\nbare\n",
			expected: []WorktreeInfo{
				{Path: "/a", Head: "111", Branch: "one"},
				{Path: "/b", Head: "222"},
				{Path: "/c", Head: "333", IsBare: true},
			},
		},
		{
			name:   "last seen value wins inside a block",
			output: "worktree /a\nHEAD 111\nHEAD 222\nbranch refs/heads/one\nbranch refs/heads/two\n",
			expected: []WorktreeInfo{
				{Path: "/a", Head: "222", Branch: "two"},
			},
		},
		{
			name:     "block without worktree line is dropped",
			output:   "HEAD 111\nbranch refs/heads/one\n\n",
			expected: nil,
		},
		{
			name:   "repeated blank lines",
			output: "\n\nworktree /a\nHEAD 111\n\n\n\nworktree /b\nHEAD 222\n\n",
			expected: []WorktreeInfo{
				{Path: "/a", Head: "111"},
				{Path: "/b", Head: "222"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWorktreePorcelain(tt.output))
		})
	}
}

func TestParseWorktreePorcelain_RecordCountMatchesBlocks(t *testing.T) {
	output := "worktree /a\nHEAD 1\n\nworktree /b\nHEAD 2\nbranch refs/heads/b\n\nworktree /c\nHEAD 3\ndetached\n"

	worktrees := ParseWorktreePorcelain(output)

	require.Len(t, worktrees, 3)
	assert.Equal(t, []string{"/a", "/b", "/c"}, []string{worktrees[0].Path, worktrees[1].Path, worktrees[2].Path})
	assert.False(t, worktrees[2].IsBare)
	assert.Empty(t, worktrees[2].Branch)
}

func TestParseBranchList(t *testing.T) {
	output := "  feature-a\n* main\n+ feature-b\n  fix/deep/name\n\n"

	assert.Equal(t, []string{"feature-a", "feature-b", "fix/deep/name"}, parseBranchList(output, "main"))
	assert.Nil(t, parseBranchList("", "main"))
}
