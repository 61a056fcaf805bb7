package wm

// SetFocus moves the workspace's focus to id. id must be a live node;
// a stale id is rejected silently and focus is left unchanged. The
// workspace whose focus changes is whichever workspace owns id, not
// necessarily the currently-visible one.
func (h *Hub) SetFocus(id NodeId) {
	if id.IsNil() || !h.store.exists(id) {
		return
	}
	ws := h.owningWorkspace(id)
	if !id.IsWorkspace() {
		h.recordFocusPath(id)
	}
	h.store.workspace(ws).focused = id
	h.runCommand(ws)
}

// recordFocusPath walks from n up to its workspace, remembering n's ancestor
// chain as each container's last-active child and, for tabbed containers
// along the path, updating the active tab.
func (h *Hub) recordFocusPath(n NodeId) {
	for _, step := range h.ancestorChain(n) {
		c, ok := step.parent.AsContainer()
		if !ok {
			continue
		}
		cd := h.store.container(c)
		cd.lastActive = step.childNode
		if cd.layout.IsTabbed() {
			if idx := indexOfNode(cd.children, step.childNode); idx >= 0 {
				cd.layout.ActiveTab = idx
			}
		}
	}
}

func indexOfNode(nodes []NodeId, n NodeId) int {
	for i, c := range nodes {
		if c == n {
			return i
		}
	}
	return -1
}

// FocusParent moves focus from a window or container to its parent, which
// may itself be a container or the workspace. It is a no-op once focus is
// already on the workspace (there is nowhere further to go) or when the
// workspace is empty.
func (h *Hub) FocusParent() {
	ws := h.current
	f := h.Focused()
	if f.IsNil() || f.IsWorkspace() {
		return
	}
	parent := h.store.parentOf(f)
	h.store.workspace(ws).focused = parent
	h.runCommand(ws)
}

// FocusDirection moves focus to the neighboring leaf in the given
// direction. It never changes tree structure; at a boundary it is a no-op.
func (h *Hub) FocusDirection(dir FocusDirection) {
	ws := h.current
	f := h.Focused()
	if f.IsNil() || f.IsWorkspace() {
		return
	}
	axis, sign := dir.axis()

	var container ContainerId
	var targetIdx int
	found := false
	for _, step := range h.ancestorChain(f) {
		c, ok := step.parent.AsContainer()
		if !ok {
			continue // reached the workspace with no qualifying ancestor
		}
		cd := h.store.container(c)
		if cd.layout.IsTabbed() {
			continue // tabbed containers never participate in axis matching
		}
		if cd.layout.Direction != axis {
			continue
		}
		idx := indexOfNode(cd.children, step.childNode)
		candidate := idx + sign
		if candidate < 0 || candidate >= len(cd.children) {
			continue // matches the axis but has no sibling this way; keep climbing
		}
		container, targetIdx, found = c, candidate, true
		break
	}
	if !found {
		return
	}

	target := h.store.container(container).children[targetIdx]
	result := h.descendInto(target, axis, sign)

	h.recordFocusPath(result)
	h.store.workspace(ws).focused = result
	h.runCommand(ws)
}

// descendInto follows target down to a leaf, preferring each container's
// last-active child, then the neighbor nearest the crossing boundary for a
// same-axis split, then the active/first child otherwise.
func (h *Hub) descendInto(target NodeId, axis Direction, sign int) NodeId {
	for {
		c, ok := target.AsContainer()
		if !ok {
			return target
		}
		cd := h.store.container(c)
		if len(cd.children) == 0 {
			return target
		}

		var next NodeId
		switch {
		case !cd.lastActive.IsNil() && h.store.exists(cd.lastActive):
			next = cd.lastActive
		case cd.layout.IsSplit() && cd.layout.Direction == axis:
			if sign < 0 {
				next = cd.children[len(cd.children)-1] // entering from the right/below
			} else {
				next = cd.children[0] // entering from the left/above
			}
		case cd.layout.IsTabbed():
			idx := cd.layout.ActiveTab
			if idx < 0 || idx >= len(cd.children) {
				idx = 0
			}
			next = cd.children[idx]
		default: // split container on the cross axis, no memory
			next = cd.children[0]
		}
		target = next
	}
}
