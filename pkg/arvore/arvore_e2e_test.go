//go:build e2e

package arvore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/arvore/pkg/config"
	"github.com/lerenn/arvore/pkg/dependencies"
	"github.com/lerenn/arvore/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupE2E creates a repository with an origin remote and an arvore instance
// whose worktree base is a temporary directory.
func setupE2E(t *testing.T) (Arvore, string, string) {
	t.Helper()

	repoPath, _ := git.SetupTestRepoWithRemote(t)

	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("worktree_base: "+base+"\n"), 0644))

	a, err := NewArvore(NewArvoreParams{
		Dependencies: dependencies.New().WithConfig(config.NewManager(configPath)),
		WorkDir:      repoPath,
	})
	require.NoError(t, err)

	return a, repoPath, base
}

func TestE2E_CreateListRemove(t *testing.T) {
	a, repoPath, base := setupE2E(t)
	expectedPath := filepath.Join(base, filepath.Base(repoPath), "feat-x")

	created, err := a.CreateWorktree("feat/x")
	require.NoError(t, err)
	path := created.Path
	assert.Equal(t, expectedPath, path)
	assert.DirExists(t, path)

	worktrees, err := a.ListWorktrees()
	require.NoError(t, err)
	require.Len(t, worktrees, 2)
	assert.Equal(t, "main", worktrees[0].Branch)
	assert.Equal(t, "feat/x", worktrees[1].Branch)
	assert.Equal(t, expectedPath, worktrees[1].Path)
	assert.False(t, worktrees[1].Dirty)

	resolved, exists, err := a.WorktreePath("feat/x")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, expectedPath, resolved)

	require.NoError(t, a.RemoveWorktree("feat/x", false))
	assert.NoDirExists(t, path)
	assert.NoDirExists(t, filepath.Dir(path))

	worktrees, err = a.ListWorktrees()
	require.NoError(t, err)
	assert.Len(t, worktrees, 1)
}

func TestE2E_RemoveDirtyRequiresForce(t *testing.T) {
	a, _, _ := setupE2E(t)

	created, err := a.CreateWorktree("dirty")
	require.NoError(t, err)
	path := created.Path
	require.NoError(t, os.WriteFile(filepath.Join(path, "scratch.txt"), []byte("wip\n"), 0644))

	worktrees, err := a.ListWorktrees()
	require.NoError(t, err)
	require.Len(t, worktrees, 2)
	assert.True(t, worktrees[1].Dirty)

	err = a.RemoveWorktree("dirty", false)
	require.ErrorIs(t, err, ErrDirtyWorktree)
	assert.Contains(t, err.Error(), "--force")
	assert.DirExists(t, path)

	require.NoError(t, a.RemoveWorktree(path, true))
	assert.NoDirExists(t, path)
}

func TestE2E_CreateChecksOutExistingBranch(t *testing.T) {
	a, repoPath, _ := setupE2E(t)
	git.RunTestGit(t, repoPath, "branch", "existing")

	created, err := a.CreateWorktree("existing")
	require.NoError(t, err)
	path := created.Path

	head := git.RunTestGit(t, path, "rev-parse", "--abbrev-ref", "HEAD")
	assert.Equal(t, "existing\n", head)
}

func TestE2E_CreateFromRef(t *testing.T) {
	a, repoPath, _ := setupE2E(t)
	git.RunTestGit(t, repoPath, "tag", "v1")

	created, err := a.CreateWorktree("from-tag", CreateWorktreeOpts{From: "v1"})
	require.NoError(t, err)
	path := created.Path

	head := git.RunTestGit(t, path, "rev-parse", "--abbrev-ref", "HEAD")
	assert.Equal(t, "from-tag\n", head)
}

func TestE2E_RemoveUnknown(t *testing.T) {
	a, _, _ := setupE2E(t)

	err := a.RemoveWorktree("nope", false)
	assert.ErrorIs(t, err, ErrWorktreeNotFound)
}

func TestE2E_CleanDryRun(t *testing.T) {
	a, repoPath, _ := setupE2E(t)

	_, err := a.CreateWorktree("merged-branch")
	require.NoError(t, err)
	git.RunTestGit(t, repoPath, "push", git.DefaultRemote, "merged-branch")

	_, err = a.CreateWorktree("local-only", CreateWorktreeOpts{From: "main"})
	require.NoError(t, err)

	result, err := a.Clean(CleanOpts{DryRun: true})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)

	reasons := map[string]string{}
	for _, c := range result.Candidates {
		reasons[c.Branch] = c.Reason()
	}
	assert.Equal(t, map[string]string{
		"merged-branch": "merged",
		"local-only":    "merged + remote deleted",
	}, reasons)
	assert.Empty(t, result.Removed)
}

func TestE2E_NotARepository(t *testing.T) {
	a, err := NewArvore(NewArvoreParams{
		Dependencies: dependencies.New().WithConfig(config.NewManager(filepath.Join(t.TempDir(), "none.yaml"))),
		WorkDir:      t.TempDir(),
	})
	require.NoError(t, err)

	_, err = a.ListWorktrees()
	assert.ErrorIs(t, err, ErrNotARepository)
}
