package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwel/kwm/internal/config"
	"github.com/cwel/kwm/internal/scenario"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kwm configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(filepath.Join(config.ConfigDir(), "config.toml"))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file and install bundled scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir := config.ConfigDir()
		configPath := filepath.Join(configDir, "config.toml")

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			backupPath := configPath + ".bak"
			if err := os.Rename(configPath, backupPath); err != nil {
				return fmt.Errorf("backup config: %w", err)
			}
			fmt.Printf("Backed up existing config to %s\n", backupPath)
		}

		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Created config at %s\n", configPath)

		if err := scenario.InstallBundled(); err != nil {
			return fmt.Errorf("install bundled scenarios: %w", err)
		}
		fmt.Printf("Installed bundled scenarios to %s\n", filepath.Join(config.DataDir(), "scenarios"))

		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
