package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// detectShell returns the shell named by $SHELL, defaulting to bash
func detectShell() string {
	switch name := strings.ToLower(filepath.Base(os.Getenv("SHELL"))); {
	case strings.Contains(name, "fish"):
		return "fish"
	case strings.Contains(name, "zsh"):
		return "zsh"
	case strings.Contains(name, "pwsh"), strings.Contains(name, "powershell"):
		return "powershell"
	default:
		return "bash"
	}
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for alpsinfo.

If no shell is specified, it is detected from $SHELL (bash when unknown).

To load completions:

Bash:
  $ source <(alpsinfo completion bash)

Zsh:
  $ alpsinfo completion zsh > "${fpath[1]}/_alpsinfo"

Fish:
  $ alpsinfo completion fish | source

PowerShell:
  PS> alpsinfo completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell()
		if len(args) > 0 {
			shell = args[0]
		}

		w := cmd.OutOrStdout()
		switch shell {
		case "zsh":
			return cmd.Root().GenZshCompletion(w)
		case "fish":
			return cmd.Root().GenFishCompletion(w, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(w)
		default:
			return cmd.Root().GenBashCompletionV2(w, true)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
