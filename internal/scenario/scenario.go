// Package scenario parses and replays YAML command scripts against a
// wm.Hub. A scenario is not persisted layout state — it is a fixed
// sequence of commands (the same kind a keybinding or a test issues), so
// replaying one is just scripted interaction, not state restoration.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cwel/kwm/internal/wm"
)

// Step is one scripted command.
type Step struct {
	Command string  `yaml:"command"`
	Label   string  `yaml:"label,omitempty"`   // insert_tiling
	Target  int     `yaml:"target,omitempty"`  // focus_workspace, move_focused_to_workspace
	X       float64 `yaml:"x,omitempty"`       // insert_float
	Y       float64 `yaml:"y,omitempty"`
	W       float64 `yaml:"w,omitempty"`
	H       float64 `yaml:"h,omitempty"`
}

// Scenario is a named, described sequence of steps.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

var validCommands = map[string]bool{
	"insert_tiling":            true,
	"insert_float":             true,
	"delete_last_inserted":     true,
	"focus_left":               true,
	"focus_right":              true,
	"focus_up":                 true,
	"focus_down":               true,
	"focus_parent":             true,
	"focus_workspace":          true,
	"toggle_direction":         true,
	"toggle_spawn_mode":        true,
	"toggle_container_layout":  true,
	"move_focused_to_workspace": true,
}

// Parse parses a YAML scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// Validate checks that every step names a known command.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step required")
	}
	for i, step := range s.Steps {
		if !validCommands[step.Command] {
			return fmt.Errorf("step %d: unknown command %q", i, step.Command)
		}
	}
	return nil
}

// Runner replays a scenario's steps against a hub, remembering the most
// recently inserted node so delete_last_inserted has something to act on.
type Runner struct {
	hub          *wm.Hub
	lastInserted wm.NodeId
}

// NewRunner wraps hub for scenario playback.
func NewRunner(hub *wm.Hub) *Runner {
	return &Runner{hub: hub, lastInserted: wm.NilNode}
}

// Run applies every step of s in order and returns an error on the first
// step that fails: a step naming an unknown command (which Validate
// rejects up front), or a delete_last_inserted with no inserted node to
// delete (which passes Validate and fails only during replay).
func (r *Runner) Run(s *Scenario) error {
	for i, step := range s.Steps {
		if err := r.step(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Command, err)
		}
	}
	return nil
}

func (r *Runner) step(step Step) error {
	switch step.Command {
	case "insert_tiling":
		id := r.hub.InsertTiling(step.Label)
		r.lastInserted = wm.WindowRef(id)
	case "insert_float":
		id := r.hub.InsertFloat(wm.Dimension{X: step.X, Y: step.Y, W: step.W, H: step.H})
		r.lastInserted = wm.FloatRef(id)
	case "delete_last_inserted":
		if r.lastInserted.IsNil() {
			return fmt.Errorf("no last-inserted window to delete")
		}
		r.hub.DeleteWindow(r.lastInserted)
		r.lastInserted = wm.NilNode
	case "focus_left":
		r.hub.FocusDirection(wm.Left)
	case "focus_right":
		r.hub.FocusDirection(wm.Right)
	case "focus_up":
		r.hub.FocusDirection(wm.Up)
	case "focus_down":
		r.hub.FocusDirection(wm.Down)
	case "focus_parent":
		r.hub.FocusParent()
	case "focus_workspace":
		r.hub.FocusWorkspace(wm.WorkspaceId(step.Target))
	case "toggle_direction":
		r.hub.ToggleDirection()
	case "toggle_spawn_mode":
		r.hub.ToggleSpawnMode()
	case "toggle_container_layout":
		r.hub.ToggleContainerLayout()
	case "move_focused_to_workspace":
		r.hub.MoveFocusedToWorkspace(wm.WorkspaceId(step.Target))
	default:
		return fmt.Errorf("unhandled command %q", step.Command)
	}
	return nil
}
