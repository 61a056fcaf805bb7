package wm

// containerNodeData holds a container's mutable state: its layout, its
// children in display order, and per-child "last active" memory used for
// focus re-entry.
type containerNodeData struct {
	id       ContainerId
	parent   NodeId // a Container or a Workspace
	layout   ContainerLayout
	children []NodeId

	// lastActive is the child (by its slot in children) that was most
	// recently the path of a set-focus walk through this container.
	lastActive NodeId

	rect Rect
}

// windowNodeData holds a tiled window's mutable state.
type windowNodeData struct {
	id     WindowId
	parent NodeId // a Container or a Workspace
	name   string
	rect   Rect
}

// floatNodeData holds a floating window's mutable state.
type floatNodeData struct {
	id     FloatId
	parent WorkspaceId
	rect   Rect
}

// workspaceData holds a workspace's mutable state.
type workspaceData struct {
	id      WorkspaceId
	name    int
	root    NodeId // a Container, a Window, or NilNode if empty
	floats  []FloatId
	focused NodeId // Window, Float, Container, or NilNode
}
