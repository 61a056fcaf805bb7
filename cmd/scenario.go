package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwel/kwm/internal/config"
	"github.com/cwel/kwm/internal/scenario"
	"github.com/cwel/kwm/internal/wm"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Inspect and replay scripted command scenarios",
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios (user-installed and bundled)",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scenario.List() {
			fmt.Println(name)
		}
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:               "run <name>",
	Short:             "Replay a scenario against a fresh hub and print the resulting layout",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScenarioNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		hub := wm.New(wm.Rect{X: 0, Y: 0, W: cfg.Screen.Width, H: cfg.Screen.Height})

		if err := scenario.NewRunner(hub).Run(s); err != nil {
			return fmt.Errorf("run scenario: %w", err)
		}

		fmt.Println(hub.Snapshot(hub.CurrentWorkspace()))
		fmt.Println()
		fmt.Println(hub.Render(hub.CurrentWorkspace()))
		return nil
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)
	rootCmd.AddCommand(scenarioCmd)
}
