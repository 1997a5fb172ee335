package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for logruler.

To load completions:

Bash:
  $ source <(logruler completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ logruler completion bash > /etc/bash_completion.d/logruler
  # macOS:
  $ logruler completion bash > $(brew --prefix)/etc/bash_completion.d/logruler

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ logruler completion zsh > "${fpath[1]}/_logruler"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ logruler completion fish | source

  # To load completions for each session, execute once:
  $ logruler completion fish > ~/.config/fish/completions/logruler.fish

PowerShell:
  PS> logruler completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> logruler completion powershell > logruler.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
