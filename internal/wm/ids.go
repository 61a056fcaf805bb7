// Package wm implements the tiling layout engine: an in-memory tree of
// workspaces, split/tabbed containers, tiled windows, and floating windows,
// plus the commands that mutate it and the layout pass that turns it into
// screen geometry.
package wm

import "fmt"

// WorkspaceId identifies a workspace. Workspaces are numbered by the caller
// (their "name") and lazily materialized on first access.
type WorkspaceId int

// ContainerId identifies a split or tabbed container.
type ContainerId int

// WindowId identifies a tiled window leaf.
type WindowId int

// FloatId identifies a floating window leaf.
type FloatId int

func (id WorkspaceId) String() string { return fmt.Sprintf("WorkspaceId(%d)", int(id)) }
func (id ContainerId) String() string { return fmt.Sprintf("ContainerId(%d)", int(id)) }
func (id WindowId) String() string    { return fmt.Sprintf("WindowId(%d)", int(id)) }
func (id FloatId) String() string     { return fmt.Sprintf("FloatWindowId(%d)", int(id)) }

// NodeId is any addressable node: a container, a tiled window, or a float.
// Workspaces are addressable too (focus_parent can land focus on one), but
// they never appear as a child in a parent's children list.
type NodeId struct {
	kind nodeKind
	val  int
}

type nodeKind uint8

const (
	kindNone nodeKind = iota
	kindWorkspace
	kindContainer
	kindWindow
	kindFloat
)

// NilNode is the zero value of NodeId; it never refers to a live node.
var NilNode = NodeId{}

func containerNode(id ContainerId) NodeId { return NodeId{kind: kindContainer, val: int(id)} }
func windowNode(id WindowId) NodeId       { return NodeId{kind: kindWindow, val: int(id)} }
func floatNode(id FloatId) NodeId         { return NodeId{kind: kindFloat, val: int(id)} }
func workspaceNode(id WorkspaceId) NodeId { return NodeId{kind: kindWorkspace, val: int(id)} }

// ContainerRef, WindowRef, FloatRef, and WorkspaceRef let external callers
// (commands, tests, the TUI) build a NodeId to pass to SetFocus and
// MoveFocusedToWorkspace without exposing the arena itself.
func ContainerRef(id ContainerId) NodeId { return containerNode(id) }
func WindowRef(id WindowId) NodeId       { return windowNode(id) }
func FloatRef(id FloatId) NodeId         { return floatNode(id) }
func WorkspaceRef(id WorkspaceId) NodeId { return workspaceNode(id) }

// IsNil reports whether n is the nil node reference.
func (n NodeId) IsNil() bool { return n.kind == kindNone }

// IsContainer reports whether n refers to a container.
func (n NodeId) IsContainer() bool { return n.kind == kindContainer }

// IsWindow reports whether n refers to a tiled window.
func (n NodeId) IsWindow() bool { return n.kind == kindWindow }

// IsFloat reports whether n refers to a floating window.
func (n NodeId) IsFloat() bool { return n.kind == kindFloat }

// IsWorkspace reports whether n refers to a workspace itself.
func (n NodeId) IsWorkspace() bool { return n.kind == kindWorkspace }

// AsContainer returns the ContainerId of n and true if n is a container.
func (n NodeId) AsContainer() (ContainerId, bool) {
	if n.kind != kindContainer {
		return 0, false
	}
	return ContainerId(n.val), true
}

// AsWindow returns the WindowId of n and true if n is a tiled window.
func (n NodeId) AsWindow() (WindowId, bool) {
	if n.kind != kindWindow {
		return 0, false
	}
	return WindowId(n.val), true
}

// AsFloat returns the FloatId of n and true if n is a float.
func (n NodeId) AsFloat() (FloatId, bool) {
	if n.kind != kindFloat {
		return 0, false
	}
	return FloatId(n.val), true
}

// AsWorkspace returns the WorkspaceId of n and true if n is a workspace.
func (n NodeId) AsWorkspace() (WorkspaceId, bool) {
	if n.kind != kindWorkspace {
		return 0, false
	}
	return WorkspaceId(n.val), true
}

func (n NodeId) String() string {
	switch n.kind {
	case kindContainer:
		return ContainerId(n.val).String()
	case kindWindow:
		return WindowId(n.val).String()
	case kindFloat:
		return FloatId(n.val).String()
	case kindWorkspace:
		return WorkspaceId(n.val).String()
	default:
		return "Nil"
	}
}
