package main

import (
	"fmt"
	"io"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/arvore"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

func createCreateCmd() *cobra.Command {
	var from string
	var open bool

	createCmd := &cobra.Command{
		Use:   "create <branch>",
		Short: "Create a worktree for a branch",
		Long: `Create a worktree for a branch in <worktree_base>/<repository>/<branch>.

An existing local or remote branch is checked out, any other branch is created from HEAD.

Examples:
  arvore create feature/login
  arvore create hotfix --from v1.2.0
  arvore create review --open`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.NewArvore()
			if err != nil {
				return err
			}

			result, err := a.CreateWorktree(args[0], arvore.CreateWorktreeOpts{
				From: from,
				Open: open,
			})
			displayCreateResult(cmd.OutOrStdout(), result)
			return err
		},
	}

	createCmd.Flags().StringVar(&from, "from", "", "Create the branch from this ref")
	createCmd.Flags().BoolVar(&open, "open", false, "Open the worktree in Warp and Cursor after creation")

	return createCmd
}

// displayCreateResult prints the created worktree and the applications it was opened in.
func displayCreateResult(out io.Writer, result arvore.CreateWorktreeResult) {
	if result.Path == "" {
		return
	}
	fmt.Fprintf(out, "%s Created worktree at %s\n", style.Success(), style.Accent(result.Path))
	for _, app := range result.Opened {
		fmt.Fprintf(out, "%s Opened in %s\n", style.Success(), style.Accent(app))
	}
}
