package wm

// InsertTiling inserts a new tiled window relative to the current focus and
// returns its id. The label is optional display metadata; an
// empty string means "no name" (Render falls back to "W<id>"; Snapshot
// prints the empty name as "").
func (h *Hub) InsertTiling(name string) WindowId {
	ws := h.current
	w := h.store.workspace(ws)

	if w.root.IsNil() {
		id := h.store.allocWindow(name, workspaceNode(ws))
		w.root = windowNode(id)
		h.focusNewWindow(ws, windowNode(id))
		return id
	}

	anchor := h.insertAnchor(ws)
	id := h.store.allocWindow(name, NilNode) // parent fixed up below
	newNode := windowNode(id)

	switch a := anchor; {
	case a.IsWindow():
		h.insertBesideWindow(ws, a, newNode)
	case a.IsContainer():
		h.insertBesideContainer(ws, a, newNode)
	}

	h.focusNewWindow(ws, newNode)
	return id
}

// InsertFloat appends a new floating window at the given absolute rectangle
// and focuses it. Floats never participate in the tiling tree or spawn
// mode.
func (h *Hub) InsertFloat(dim Dimension) FloatId {
	ws := h.current
	w := h.store.workspace(ws)
	id := h.store.allocFloat(Rect{X: dim.X, Y: dim.Y, W: dim.W, H: dim.H}, ws)
	w.floats = append(w.floats, id)
	h.focusNewWindow(ws, floatNode(id))
	return id
}

func (h *Hub) focusNewWindow(ws WorkspaceId, n NodeId) {
	h.recordFocusPath(n)
	h.store.workspace(ws).focused = n
	h.runCommand(ws)
}

// insertAnchor resolves the tiling node insertion is relative to: the
// focused node if it is part of the tiling tree, else the workspace's
// tiling root (covers focus currently sitting on a float).
func (h *Hub) insertAnchor(ws WorkspaceId) NodeId {
	focused := h.store.workspace(ws).focused
	if focused.IsWindow() || focused.IsContainer() {
		return focused
	}
	return h.store.workspace(ws).root
}

func spawnAxis(mode SpawnMode) (Direction, bool) {
	switch mode {
	case AsSibling:
		return Horizontal, true
	case AsPerpendicular:
		return Vertical, true
	default:
		return Horizontal, false
	}
}

// insertBesideWindow handles anchor being a tiled window, whether it is the
// workspace's sole root or sits inside a container.
func (h *Hub) insertBesideWindow(ws WorkspaceId, anchor, newNode NodeId) {
	parent := h.store.parentOf(anchor)

	if parent.IsWorkspace() {
		h.wrapInNewContainer(ws, anchor, h.spawnLayoutForWrap(), newNode)
		return
	}

	p, _ := parent.AsContainer()
	pd := h.store.container(p)

	if axis, isSplit := spawnAxis(h.spawn); isSplit {
		if pd.layout.IsSplit() && pd.layout.Direction == axis {
			idx := indexOfNode(pd.children, anchor)
			h.store.insertChildAfter(p, idx, newNode)
			return
		}
		h.wrapInNewContainer(ws, anchor, ContainerLayout{Kind: LayoutSplit, Direction: axis}, newNode)
		return
	}

	// AsTab: look for an existing tabbed container starting at anchor's
	// immediate parent and walking up.
	if t, ok := h.findTabbedAncestor(parent); ok {
		h.appendAsActiveTab(t, newNode)
		return
	}
	h.wrapInNewContainer(ws, anchor, Tabbed(1), newNode)
}

// insertBesideContainer handles anchor being a container (focus landed on
// one via focus_parent or set_focus).
func (h *Hub) insertBesideContainer(ws WorkspaceId, anchor, newNode NodeId) {
	c, _ := anchor.AsContainer()
	cd := h.store.container(c)

	if h.spawn == AsTab {
		if cd.layout.IsTabbed() {
			h.appendAsActiveTab(c, newNode)
			return
		}
		h.wrapInNewContainer(ws, anchor, Tabbed(1), newNode)
		return
	}

	axis, _ := spawnAxis(h.spawn)
	if cd.layout.IsSplit() && cd.layout.Direction == axis {
		h.store.appendChild(c, newNode)
		return
	}
	h.wrapInNewContainer(ws, anchor, ContainerLayout{Kind: LayoutSplit, Direction: axis}, newNode)
}

// spawnLayoutForWrap maps the current spawn mode to the layout used when
// wrapping a lone window root.
func (h *Hub) spawnLayoutForWrap() ContainerLayout {
	switch h.spawn {
	case AsSibling:
		return SplitH()
	case AsPerpendicular:
		return SplitV()
	default:
		return Tabbed(1)
	}
}

// findTabbedAncestor walks from start (inclusive) up through containers
// looking for a tabbed one.
func (h *Hub) findTabbedAncestor(start NodeId) (ContainerId, bool) {
	cur := start
	for {
		c, ok := cur.AsContainer()
		if !ok {
			return 0, false
		}
		cd := h.store.container(c)
		if cd.layout.IsTabbed() {
			return c, true
		}
		cur = cd.parent
	}
}

func (h *Hub) appendAsActiveTab(c ContainerId, newNode NodeId) {
	h.store.appendChild(c, newNode)
	cd := h.store.container(c)
	cd.layout.ActiveTab = len(cd.children) - 1
}

// wrapInNewContainer replaces node in its current slot (a container's
// children list or a workspace's tiling root) with a freshly allocated
// container holding [node, newChild], in that order.
func (h *Hub) wrapInNewContainer(ws WorkspaceId, node NodeId, layout ContainerLayout, newChild NodeId) ContainerId {
	oldParent := h.store.parentOf(node)
	id := h.store.allocContainer(layout, oldParent, []NodeId{node, newChild})
	// allocContainer already reparented node and newChild to the new
	// container; replaceInParent only needs to fix the old parent's slot.
	h.replaceInParent(ws, oldParent, node, containerNode(id))
	return id
}
