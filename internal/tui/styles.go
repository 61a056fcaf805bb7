package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette
var (
	// Core colors
	blue = lipgloss.Color("#89b4fa") // primary

	// Neutral tones
	overlay1 = lipgloss.Color("#7f849c")
	overlay0 = lipgloss.Color("#6c7086")
	surface1 = lipgloss.Color("#45475a")
)

var (
	// Theme aliases
	primaryColor = blue

	// Borders
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(surface1)

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// Section header style
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(overlay1).
				Bold(true)

	// Help bar
	helpStyle = lipgloss.NewStyle().
			Foreground(overlay1).
			Padding(1, 2)

	// Dimmed text
	dimStyle = lipgloss.NewStyle().
			Foreground(overlay0)
)
