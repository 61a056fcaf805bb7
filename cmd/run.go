package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwel/kwm/internal/config"
	"github.com/cwel/kwm/internal/tui"
)

func runTUI() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m := tui.New(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
