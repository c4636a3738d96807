package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerenn/arvore/pkg/branch"
)

// DefaultWorktreeBase is the worktree base used when none is configured.
const DefaultWorktreeBase = "~/Dev/worktrees"

// Config represents the application configuration.
type Config struct {
	// WorktreeBase is the directory holding one sub-directory per repository.
	WorktreeBase string `yaml:"worktree_base"`
}

// WorktreePath returns where the worktree of branch lives for repository repoName:
// <worktree_base>/<repo>/<branch with "/" replaced by "-">.
func (c Config) WorktreePath(repoName, branchName string) string {
	return filepath.Join(c.WorktreeBase, repoName, branch.DirName(branchName))
}

// expandTildes expands a leading "~" or "~/" in configuration paths.
func (c *Config) expandTildes() error {
	expanded, err := ExpandTilde(c.WorktreeBase)
	if err != nil {
		return err
	}
	c.WorktreeBase = expanded
	return nil
}

// ExpandTilde replaces a leading "~" or "~/" with the user's home directory.
// Other forms such as "~user" are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirNotFound, err)
	}

	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~/")), nil
}
