package cmd

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwel/kwm/internal/scenario"
)

// completeScenarioNames returns scenario names for shell completion.
func completeScenarioNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, name := range scenario.List() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for kwm.

For zsh, add this to your .zshrc:
  eval "$(kwm completion zsh)"

Or generate a file for zinit/fpath:
  kwm completion zsh > ~/.local/share/zinit/completions/_kwm
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "zsh":
			var buf bytes.Buffer
			if err := rootCmd.GenZshCompletion(&buf); err != nil {
				return err
			}
			lines := strings.Split(buf.String(), "\n")
			for _, line := range lines {
				if line == "compdef _kwm kwm" {
					continue
				}
				os.Stdout.WriteString(line + "\n")
			}
			return nil
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
