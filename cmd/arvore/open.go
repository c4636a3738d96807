package main

import (
	"fmt"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/arvore"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	var opts arvore.OpenWorktreeOpts

	openCmd := &cobra.Command{
		Use:   "open <branch>",
		Short: "Open a worktree in Warp and Cursor",
		Long: `Open the worktree of a branch in Warp, Cursor, or both.

Without flags the worktree is opened in both applications.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.NewArvore()
			if err != nil {
				return err
			}

			opened, err := a.OpenWorktree(args[0], opts)
			for _, app := range opened {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Opened in %s\n", style.Success(), style.Accent(app))
			}
			return err
		},
	}

	openCmd.Flags().BoolVar(&opts.Cursor, "cursor", false, "Open in Cursor")
	openCmd.Flags().BoolVar(&opts.Warp, "warp", false, "Open in Warp")
	openCmd.Flags().BoolVar(&opts.All, "all", false, "Open in both Warp and Cursor")

	return openCmd
}
