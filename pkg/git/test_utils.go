package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a temporary git repository on branch main with one commit.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := filepath.Join(t.TempDir(), "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("Failed to create repository directory: %v", err)
	}

	RunTestGit(t, repoPath, "init", "-b", "main")
	configureGitUser(t, repoPath)
	createInitialCommit(t, repoPath)

	// Resolve symlinks so paths match the ones git reports (macOS /var -> /private/var).
	resolved, err := filepath.EvalSymlinks(repoPath)
	if err != nil {
		t.Fatalf("Failed to resolve repository path: %v", err)
	}
	return resolved
}

// RunTestGit runs a git command in dir and fails the test on error.
func RunTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
	return string(output)
}

func configureGitUser(t *testing.T, repoPath string) {
	t.Helper()
	RunTestGit(t, repoPath, "config", "user.name", "Test User")
	RunTestGit(t, repoPath, "config", "user.email", "test@example.com")
}

func createInitialCommit(t *testing.T, repoPath string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# Test Repository\n"), 0644); err != nil {
		t.Fatalf("Failed to create README file: %v", err)
	}
	RunTestGit(t, repoPath, "add", "README.md")
	RunTestGit(t, repoPath, "commit", "-m", "Initial commit")
}

// SetupTestRepoWithRemote creates a test repository whose main branch is pushed
// to a bare "origin" remote. It returns the repository and the remote paths.
func SetupTestRepoWithRemote(t *testing.T) (string, string) {
	t.Helper()

	repoPath := SetupTestRepo(t)
	remotePath := filepath.Join(filepath.Dir(repoPath), "origin.git")

	RunTestGit(t, filepath.Dir(repoPath), "init", "--bare", "-b", "main", remotePath)
	RunTestGit(t, repoPath, "remote", "add", DefaultRemote, remotePath)
	RunTestGit(t, repoPath, "push", "-u", DefaultRemote, "main")

	return repoPath, remotePath
}
