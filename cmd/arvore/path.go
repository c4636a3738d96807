package main

import (
	"fmt"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

func createPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <branch>",
		Short: "Print the path of a worktree",
		Long: `Print the path of the worktree of a branch, whether it exists or not.

Example:
  cd "$(arvore path feature/login)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.NewArvore()
			if err != nil {
				return err
			}

			path, exists, err := a.WorktreePath(args[0])
			if err != nil {
				return err
			}

			if !exists {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s worktree path does not exist yet: %s\n", style.WarningPrefix(), path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
