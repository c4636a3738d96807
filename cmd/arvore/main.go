// Package main provides the command-line interface of arvore.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/arvore/cmd/arvore/internal/cli"
	"github.com/lerenn/arvore/pkg/style"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arvore",
		Short: "Arvore - Git worktree manager",
		Long: `Manage the worktrees of a git repository under a single base directory.

Worktrees live in <worktree_base>/<repository>/<branch>, with "/" in branch
names replaced by "-". The base defaults to ~/Dev/worktrees and can be set
with worktree_base in ~/.config/arvore/config.yaml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cli.ConfigPath, "config", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createCreateCmd(),
		createListCmd(),
		createRemoveCmd(),
		createOpenCmd(),
		createPathCmd(),
		createCleanCmd(),
		createCompletionsCmd(),
	)

	return rootCmd
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", style.ErrorPrefix(), err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
