package main

import (
	"fmt"
	"io"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/arvore"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	var porcelain bool

	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the worktrees of the repository",
		Long: `List the worktrees of the current repository with their state.

With --porcelain, each worktree is printed as tab separated fields:
  <branch> <path> <dirty|clean> <short head>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.NewArvore()
			if err != nil {
				return err
			}

			worktrees, err := a.ListWorktrees()
			if err != nil {
				return err
			}

			if porcelain {
				displayPorcelain(cmd.OutOrStdout(), worktrees)
			} else {
				displayWorktrees(cmd.OutOrStdout(), worktrees)
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&porcelain, "porcelain", false, "Machine readable output")

	return listCmd
}

// displayPorcelain prints one tab separated line per worktree.
func displayPorcelain(out io.Writer, worktrees []arvore.WorktreeStatus) {
	for _, wt := range worktrees {
		state := "clean"
		if wt.Dirty {
			state = "dirty"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", wt.DisplayBranch(), wt.Path, state, wt.ShortHead())
	}
}

// displayWorktrees prints the worktrees for humans.
func displayWorktrees(out io.Writer, worktrees []arvore.WorktreeStatus) {
	if len(worktrees) == 0 {
		fmt.Fprintln(out, style.Warning("No worktrees found."))
		return
	}

	for _, wt := range worktrees {
		branch := style.Bold(wt.DisplayBranch())
		modified := ""
		if wt.Dirty {
			branch = style.Warning(wt.DisplayBranch())
			modified = " " + style.Warning("[modified]")
		}
		fmt.Fprintf(out, "  %s %s %s%s\n", style.Dimmed(wt.ShortHead()), branch, style.Dimmed(wt.Path), modified)
	}
}
