package main

import (
	"fmt"
	"io"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/arvore"
	"github.com/lerenn/arvore/pkg/cleanup"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

func createCleanCmd() *cobra.Command {
	var dryRun bool

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove worktrees of merged or deleted branches",
		Long: `Fetch and prune the remotes, then offer to remove the worktrees whose branch is
merged into the main branch or no longer exists on origin.

Worktrees with uncommitted changes are flagged and removed with --force when selected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cli.NewArvore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := a.Clean(arvore.CleanOpts{
				DryRun: dryRun,
				OnFetch: func() {
					fmt.Fprintln(out, style.Accent("Fetching and pruning remotes..."))
				},
				OnCandidates: func(candidates []cleanup.Candidate) {
					displayCandidates(out, candidates)
				},
			})
			if err != nil {
				return err
			}

			displayCleanResult(out, cmd.ErrOrStderr(), result, dryRun)
			return nil
		},
	}

	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the candidates without removing anything")

	return cleanCmd
}

// displayCandidates prints the numbered list of candidates.
func displayCandidates(out io.Writer, candidates []cleanup.Candidate) {
	fmt.Fprintf(out, "\n%s\n\n", style.Header(fmt.Sprintf("%d candidate(s) for cleanup:", len(candidates))))

	for i, c := range candidates {
		dirty := ""
		if c.Dirty {
			dirty = style.Warning(" " + style.WarningMark + " dirty")
		}
		fmt.Fprintf(out, "  %d. %s (%s)%s\n     %s\n",
			i+1, style.Bold(c.Branch), style.Dimmed(c.Reason()), dirty, style.Dimmed(c.Path))
	}
	fmt.Fprintln(out)
}

// displayCleanResult prints the outcome of each selected candidate, in selection order.
func displayCleanResult(out, errOut io.Writer, result arvore.CleanResult, dryRun bool) {
	switch {
	case len(result.Candidates) == 0:
		fmt.Fprintln(out, style.Success()+" No worktrees to clean up.")
		return
	case dryRun:
		fmt.Fprintln(out, style.Accent("Dry run - no worktrees removed."))
		return
	case len(result.Selected) == 0:
		fmt.Fprintln(out, style.Warning("Nothing selected."))
		return
	}

	failures := make(map[string]error, len(result.Failures))
	for _, f := range result.Failures {
		failures[f.Candidate.Path] = f.Err
	}

	for _, c := range result.Selected {
		if err, failed := failures[c.Path]; failed {
			fmt.Fprintf(errOut, "%s Failed to remove %s: %v\n", style.Failure(), style.Warning(c.Branch), err)
			continue
		}
		fmt.Fprintf(out, "%s Removed %s\n", style.Success(), style.Accent(c.Branch))
	}

	fmt.Fprintln(out, "\n"+style.Bold("Cleanup complete."))
}
