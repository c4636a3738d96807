package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionShells lists the shells completion scripts are generated for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func createCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completions <shell>",
		Short: "Generate shell completions",
		Long: `Print the completion script of a shell on standard output.

Examples:
  arvore completions bash > ~/.local/share/bash-completion/completions/arvore
  arvore completions zsh > "${fpath[1]}/_arvore"
  arvore completions fish > ~/.config/fish/completions/arvore.fish`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: completionShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}
