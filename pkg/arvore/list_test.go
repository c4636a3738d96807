//go:build unit

package arvore

import (
	"errors"
	"testing"

	"github.com/lerenn/arvore/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorktrees(t *testing.T) {
	a, m := newTestArvore(t)
	m.expectRepository()

	m.git.EXPECT().ListWorktrees(testRepoRoot).Return([]git.WorktreeInfo{
		{Path: "/repos/myrepo.git", Head: "0000000000000000", IsBare: true},
		{Path: testRepoRoot, Head: "1111111111111111", Branch: "main"},
		{Path: testRepoDir + "/feat", Head: "2222222222222222", Branch: "feat"},
		{Path: testRepoDir + "/gone", Head: "3333333333333333"},
		{Path: testRepoDir + "/broken", Head: "4444444444444444", Branch: "broken"},
	}, nil)

	m.fs.EXPECT().Exists(testRepoRoot).Return(true, nil)
	m.fs.EXPECT().Exists(testRepoDir+"/feat").Return(true, nil)
	m.fs.EXPECT().Exists(testRepoDir+"/gone").Return(false, nil)
	m.fs.EXPECT().Exists(testRepoDir+"/broken").Return(true, nil)
	m.git.EXPECT().IsDirty(testRepoRoot).Return(false, nil)
	m.git.EXPECT().IsDirty(testRepoDir+"/feat").Return(true, nil)
	m.git.EXPECT().IsDirty(testRepoDir+"/broken").Return(false, errors.New("status failed"))

	worktrees, err := a.ListWorktrees()
	require.NoError(t, err)
	require.Len(t, worktrees, 5)

	dirty := make([]bool, 0, len(worktrees))
	for _, wt := range worktrees {
		dirty = append(dirty, wt.Dirty)
	}
	assert.Equal(t, []bool{false, false, true, false, false}, dirty)
	assert.True(t, worktrees[0].IsBare)
	assert.Equal(t, DetachedLabel, worktrees[3].DisplayBranch())
	assert.Equal(t, "22222222", worktrees[2].ShortHead())
}

func TestListWorktrees_Empty(t *testing.T) {
	a, m := newTestArvore(t)
	m.expectRepository()
	m.git.EXPECT().ListWorktrees(testRepoRoot).Return(nil, nil)

	worktrees, err := a.ListWorktrees()
	require.NoError(t, err)
	assert.Empty(t, worktrees)
}
