package wm

// ToggleDirection flips the split direction of the nearest non-tabbed split
// ancestor of the focused node. Tabbed containers never
// participate: the search passes through them to their own parent as if
// they weren't there.
func (h *Hub) ToggleDirection() {
	ws := h.current
	f := h.Focused()
	if f.IsNil() || f.IsWorkspace() {
		return
	}
	for _, step := range h.ancestorChain(f) {
		c, ok := step.parent.AsContainer()
		if !ok {
			continue
		}
		cd := h.store.container(c)
		if cd.layout.IsTabbed() {
			continue
		}
		cd.layout.Direction = flip(cd.layout.Direction)
		h.runCommand(ws)
		return
	}
}

func flip(d Direction) Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ToggleSpawnMode cycles the hub's spawn mode AsSibling -> AsPerpendicular
// -> AsTab -> AsSibling. It governs where the next insert_tiling lands and
// touches no existing tree state.
func (h *Hub) ToggleSpawnMode() {
	h.spawn = h.spawn.Next()
}

// ToggleSpawnDirection and ToggleNewWindowDirection are aliases for
// ToggleSpawnMode: the three names appear throughout the command surface
// and its scripts for the same cycle.
func (h *Hub) ToggleSpawnDirection()     { h.ToggleSpawnMode() }
func (h *Hub) ToggleNewWindowDirection() { h.ToggleSpawnMode() }

// ToggleContainerLayout converts the focused container (or the focused
// window/float's parent container) between split and tabbed. Converting to
// tabbed sets the active tab to whichever child the focus path runs
// through, or 0 if none does.
func (h *Hub) ToggleContainerLayout() {
	ws := h.current
	f := h.Focused()
	if f.IsNil() {
		return
	}

	target, ok := f.AsContainer()
	if !ok {
		parent := h.store.parentOf(f)
		target, ok = parent.AsContainer()
	}
	if !ok {
		return
	}

	cd := h.store.container(target)
	if cd.layout.IsTabbed() {
		cd.layout.Kind = LayoutSplit
		h.runCommand(ws)
		return
	}

	cd.layout.Kind = LayoutTabbed
	idx := indexOfNode(cd.children, activeTabSeed(h, target, f))
	if idx < 0 {
		idx = 0
	}
	cd.layout.ActiveTab = idx
	h.runCommand(ws)
}

// activeTabSeed picks the child of target that the focused node f descends
// through (or target's own last-active/first child, when f is target
// itself), to become the active tab on a split-to-tabbed conversion.
func activeTabSeed(h *Hub, target ContainerId, f NodeId) NodeId {
	cd := h.store.container(target)
	if f == containerNode(target) {
		if !cd.lastActive.IsNil() {
			return cd.lastActive
		}
		if len(cd.children) > 0 {
			return cd.children[0]
		}
		return NilNode
	}
	for _, step := range h.ancestorChain(f) {
		if step.parent == containerNode(target) {
			return step.childNode
		}
	}
	return NilNode
}
