package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kwm",
	Short: "A tiling window layout engine",
	Long:  "kwm is a tiling window layout engine: workspaces of split and tabbed containers holding tiled and floating windows, driven interactively or by scripted scenarios.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.SetHelpFunc(styledHelp)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
