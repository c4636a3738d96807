//go:build e2e

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/arvore/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCLI creates a repository with a remote, changes into it and returns
// the --config arguments pointing at a temporary worktree base.
func setupCLI(t *testing.T) (string, []string) {
	t.Helper()

	repoPath, _ := git.SetupTestRepoWithRemote(t)
	t.Chdir(repoPath)

	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("worktree_base: "+base+"\n"), 0644))

	return filepath.Join(base, filepath.Base(repoPath)), []string{"--config", configPath}
}

// gitOnlyPath returns a directory holding only a link to git, so that no
// application launcher can be found.
func gitOnlyPath(t *testing.T) string {
	t.Helper()
	gitPath, err := exec.LookPath("git")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Symlink(gitPath, filepath.Join(dir, "git")))
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCLI_CreateListPathRemove(t *testing.T) {
	repoDir, cfg := setupCLI(t)
	path := filepath.Join(repoDir, "feat-x")

	code, stdout, stderr := runCLI(t, append([]string{"create", "feat/x"}, cfg...)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Created worktree at "+path)

	code, stdout, _ = runCLI(t, append([]string{"ls", "--porcelain"}, cfg...)...)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 4)
	assert.Equal(t, []string{"feat/x", path, "clean"}, fields[:3])
	assert.Len(t, fields[3], 8)

	code, stdout, stderr = runCLI(t, append([]string{"path", "feat/x"}, cfg...)...)
	require.Equal(t, 0, code)
	assert.Equal(t, path+"\n", stdout)
	assert.Empty(t, stderr)

	code, stdout, _ = runCLI(t, append([]string{"rm", "feat/x"}, cfg...)...)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Removed worktree feat/x")
	assert.NoDirExists(t, path)
}

func TestCLI_PathWarnsWhenMissing(t *testing.T) {
	repoDir, cfg := setupCLI(t)

	code, stdout, stderr := runCLI(t, append([]string{"path", "not/yet"}, cfg...)...)
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(repoDir, "not-yet")+"\n", stdout)
	assert.Contains(t, stderr, "worktree path does not exist yet")
}

func TestCLI_RemoveDirtyFails(t *testing.T) {
	repoDir, cfg := setupCLI(t)

	code, _, stderr := runCLI(t, append([]string{"create", "wip"}, cfg...)...)
	require.Equal(t, 0, code, stderr)
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "wip", "notes.txt"), []byte("todo\n"), 0644))

	code, _, stderr = runCLI(t, append([]string{"rm", "wip"}, cfg...)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")
	assert.Contains(t, stderr, "--force")

	code, _, stderr = runCLI(t, append([]string{"rm", "wip", "--force"}, cfg...)...)
	assert.Equal(t, 0, code, stderr)
}

func TestCLI_CleanDryRun(t *testing.T) {
	_, cfg := setupCLI(t)

	code, _, stderr := runCLI(t, append([]string{"create", "stale"}, cfg...)...)
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := runCLI(t, append([]string{"clean", "--dry-run"}, cfg...)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "candidate(s) for cleanup")
	assert.Contains(t, stdout, "stale")
	assert.Contains(t, stdout, "merged + remote deleted")
	assert.Contains(t, stdout, "Dry run - no worktrees removed.")
}

func TestCLI_NotARepository(t *testing.T) {
	t.Chdir(t.TempDir())

	code, _, stderr := runCLI(t, "ls", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")
	assert.Contains(t, stderr, "not inside a git repository")
}

func TestCLI_CleanNotARepository(t *testing.T) {
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI(t, "clean", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not inside a git repository")
}

func TestCLI_CreateOpenReportsCreatedPath(t *testing.T) {
	repoDir, cfg := setupCLI(t)
	path := filepath.Join(repoDir, "feat")
	t.Setenv("PATH", gitOnlyPath(t))

	code, stdout, stderr := runCLI(t, append([]string{"create", "feat", "--from", "main", "--open"}, cfg...)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Created worktree at "+path)
	assert.Contains(t, stderr, "not installed")
	assert.DirExists(t, path)
}
