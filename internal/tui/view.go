package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) viewLayout() string {
	ws := m.hub.CurrentWorkspace()

	title := titleStyle.Render(fmt.Sprintf("kwm  workspace %d  spawn:%s", int(ws), m.hub.SpawnMode()))
	grid := m.hub.Render(ws)
	box := borderStyle.Render(grid)

	status := dimStyle.Render(m.status)
	help := helpStyle.Render("i insert · f float · x delete · hjkl focus · p parent · s spawn · t tabs · r rotate · g move · 0-9 workspace · ? help · q quit")

	if m.naming {
		status = dimStyle.Render(m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, box, status, help)
}

func (m Model) viewHelp() string {
	lines := []string{
		sectionHeaderStyle.Render("insertion"),
		"  i           insert a new tiled window",
		"  f           insert a floating window",
		"  x/d         delete the focused window",
		"",
		sectionHeaderStyle.Render("focus"),
		"  h/l/k/j     focus left/right/up/down",
		"  arrows      same as hjkl",
		"  p/esc       focus the parent container",
		"",
		sectionHeaderStyle.Render("layout"),
		"  s           cycle spawn mode (sibling -> perpendicular -> tab)",
		"  t           toggle focused container split <-> tabbed",
		"  r           rotate the nearest split ancestor's direction",
		"  g then 0-9  move the focused node to workspace N",
		"  0-9         switch to workspace N",
		"",
		"  ?           toggle this help",
		"  q           quit",
	}
	body := ""
	for _, l := range lines {
		body += l + "\n"
	}
	return titleStyle.Render("kwm help") + "\n\n" + body
}
