package main

import (
	"fmt"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

func createRemoveCmd() *cobra.Command {
	var force bool

	removeCmd := &cobra.Command{
		Use:     "rm <branch|path>",
		Aliases: []string{"remove"},
		Short:   "Remove a worktree",
		Long: `Remove a worktree designated by its branch name or its absolute path.

A worktree with uncommitted changes is only removed with --force.

Examples:
  arvore rm feature/login
  arvore rm ~/Dev/worktrees/repo/feature-login --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.NewArvore()
			if err != nil {
				return err
			}

			target := args[0]
			if err := a.RemoveWorktree(target, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed worktree %s\n", style.Success(), style.Accent(target))
			return nil
		},
	}

	removeCmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")

	return removeCmd
}
