package wm

// Hub is the root of the engine: the node store, the screen it lays windows
// out on, which workspace is currently visible, and the tri-state spawn
// mode that governs where new windows land. It is the only type external
// callers touch directly.
type Hub struct {
	store *store

	screen  Rect
	current WorkspaceId
	spawn   SpawnMode
}

// New creates a Hub with the given screen rectangle and workspace `0`
// materialized (but empty). Use Setup for the engine's default 150x30 screen.
func New(screen Rect) *Hub {
	h := &Hub{store: newStore(), screen: screen, current: 0}
	h.store.workspace(0)
	return h
}

// Setup returns a Hub with a 150x30 screen at the origin and one empty
// workspace, the engine's default harness size.
func Setup() *Hub {
	return New(Rect{X: 0, Y: 0, W: 150, H: 30})
}

// Screen returns the Hub's screen rectangle.
func (h *Hub) Screen() Rect { return h.screen }

// CurrentWorkspace returns the currently visible workspace id.
func (h *Hub) CurrentWorkspace() WorkspaceId { return h.current }

// SpawnMode returns the current spawn mode.
func (h *Hub) SpawnMode() SpawnMode { return h.spawn }

// FocusWorkspace selects a workspace as current, materializing it if this
// is its first use. It does not move focus within the workspace.
func (h *Hub) FocusWorkspace(id WorkspaceId) {
	h.store.workspace(id)
	h.current = id
}

// Focused returns the currently focused node of the current workspace, or
// NilNode if the workspace is empty.
func (h *Hub) Focused() NodeId {
	return h.store.workspace(h.current).focused
}

// FocusedIn returns the currently focused node of workspace ws.
func (h *Hub) FocusedIn(ws WorkspaceId) NodeId {
	return h.store.workspace(ws).focused
}

// runCommand is the shape every mutating command follows: mutate, then
// normalize, then recompute layout for every workspace whose tree may have
// changed shape. Normalization and layout are both idempotent and pure
// given the tree, so running them unconditionally after every command is
// always correct, just occasionally redundant.
func (h *Hub) runCommand(touched ...WorkspaceId) {
	seen := make(map[WorkspaceId]bool)
	for _, ws := range touched {
		if seen[ws] {
			continue
		}
		seen[ws] = true
		normalize(h, ws)
		layoutWorkspace(h, ws)
	}
}
