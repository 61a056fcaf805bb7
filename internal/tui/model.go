package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwel/kwm/internal/config"
	"github.com/cwel/kwm/internal/wm"
)

// Model is the bubbletea model driving a live wm.Hub: every keypress issues
// one engine command, then the view re-renders the resulting tree.
type Model struct {
	hub    *wm.Hub
	cfg    *config.Config
	width  int
	height int

	showHelp bool
	moveMode bool // next digit picks the target workspace for a move
	naming   bool // textinput is collecting a label for insert_tiling
	input    textinput.Model
	status   string
	quitting bool
}

// New creates a TUI model around a freshly set-up hub sized to cfg's screen
// (or the engine's built-in 150x30 default if cfg is nil).
func New(cfg *config.Config) Model {
	screen := wm.Rect{X: 0, Y: 0, W: 150, H: 30}
	if cfg != nil && cfg.Screen.Width > 0 && cfg.Screen.Height > 0 {
		screen = wm.Rect{X: 0, Y: 0, W: cfg.Screen.Width, H: cfg.Screen.Height}
	}

	ti := textinput.New()
	ti.Placeholder = "window name (enter to confirm, esc to cancel)"
	ti.CharLimit = 40

	return Model{
		hub:   wm.New(screen),
		cfg:   cfg,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		return m.handleNamingKey(msg)
	}

	key := msg.String()

	if m.moveMode {
		m.moveMode = false
		if ws, ok := digitWorkspace(key); ok {
			m.hub.MoveFocusedToWorkspace(ws)
			m.status = fmt.Sprintf("moved focused node to workspace %d", ws)
		} else {
			m.status = "move cancelled"
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "i":
		m.naming = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "f":
		id := m.hub.InsertFloat(wm.Dimension{X: 20, Y: 8, W: 40, H: 12})
		m.status = fmt.Sprintf("inserted float %s", id)
	case "x", "d", "delete", "backspace":
		focused := m.hub.Focused()
		if focused.IsWindow() || focused.IsFloat() {
			m.hub.DeleteWindow(focused)
			m.status = fmt.Sprintf("deleted %s", focused)
		} else {
			m.status = "focus a window to delete it"
		}

	case "h", "left":
		m.hub.FocusDirection(wm.Left)
	case "l", "right":
		m.hub.FocusDirection(wm.Right)
	case "k", "up":
		m.hub.FocusDirection(wm.Up)
	case "j", "down":
		m.hub.FocusDirection(wm.Down)
	case "p", "esc":
		m.hub.FocusParent()

	case "s":
		m.hub.ToggleSpawnMode()
		m.status = "spawn mode: " + m.hub.SpawnMode().String()
	case "t":
		m.hub.ToggleContainerLayout()
		m.status = "toggled container layout"
	case "r":
		m.hub.ToggleDirection()
		m.status = "toggled split direction"

	case "g":
		m.moveMode = true
		m.status = "move to workspace: press a digit"

	default:
		if ws, ok := digitWorkspace(key); ok {
			m.hub.FocusWorkspace(ws)
			m.status = fmt.Sprintf("switched to workspace %d", ws)
		}
	}

	return m, nil
}

// handleNamingKey drives the textinput while a new window's label is being
// collected; Enter inserts with the typed name (possibly empty), Esc or
// ctrl+c cancels without inserting.
func (m Model) handleNamingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		m.naming = false
		m.input.Blur()
		id := m.hub.InsertTiling(name)
		m.status = fmt.Sprintf("inserted %s", id)
		return m, nil
	case "esc", "ctrl+c":
		m.naming = false
		m.input.Blur()
		m.status = "insert cancelled"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func digitWorkspace(key string) (wm.WorkspaceId, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return wm.WorkspaceId(key[0] - '0'), true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.viewHelp()
	}
	return m.viewLayout()
}
