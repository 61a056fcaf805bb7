package wm

// DeleteWindow removes the tiled window or floating window id refers to.
// Any other node kind is a no-op. If a deleted tiled window was focused,
// focus moves to its right/below sibling, else its left/above sibling, else
// the parent container; once the tiling tree empties, focus goes to the
// workspace's first float, or to none. A focused float hands focus to the
// tiling root (see deleteFloat). Normalization (collapse/fold) then runs as
// usual.
func (h *Hub) DeleteWindow(id NodeId) {
	if win, ok := id.AsWindow(); ok {
		h.deleteTiledWindow(win)
		return
	}
	if f, ok := id.AsFloat(); ok {
		h.deleteFloat(f)
	}
}

func (h *Hub) deleteTiledWindow(id WindowId) {
	n := windowNode(id)
	if !h.store.exists(n) {
		return
	}
	ws := h.owningWorkspace(n)
	w := h.store.workspace(ws)
	wasFocused := w.focused == n
	parent := h.store.parentOf(n)

	var nextFocus NodeId = NilNode
	if wasFocused {
		nextFocus = siblingFocusCandidate(h, parent, n)
	}

	if parent.IsWorkspace() {
		w.root = NilNode
	} else {
		h.detachChild(parent, n)
	}
	h.store.removeWindow(id)

	if wasFocused {
		if nextFocus.IsNil() && !parent.IsWorkspace() {
			nextFocus = parent
		}
		if !nextFocus.IsNil() {
			h.recordFocusPath(nextFocus)
		}
		w.focused = nextFocus
	}

	h.runCommand(ws)
}

// deleteFloat removes a floating window. Floats carry no tree position, so
// a focused float falls back to the workspace's tiling root, if any.
func (h *Hub) deleteFloat(id FloatId) {
	n := floatNode(id)
	if !h.store.exists(n) {
		return
	}
	fd := h.store.float(id)
	ws := fd.parent
	w := h.store.workspace(ws)
	wasFocused := w.focused == n

	h.detachFloat(ws, id)
	h.store.removeFloat(id)

	if wasFocused {
		nextFocus := w.root
		if !nextFocus.IsNil() {
			h.recordFocusPath(nextFocus)
		}
		w.focused = nextFocus
	}

	h.runCommand(ws)
}

// siblingFocusCandidate looks for a right/below sibling of n within parent,
// falling back to a left/above one, before delete.go's caller falls back
// further to the parent container itself.
func siblingFocusCandidate(h *Hub, parent NodeId, n NodeId) NodeId {
	c, ok := parent.AsContainer()
	if !ok {
		return NilNode
	}
	children := h.store.container(c).children
	idx := indexOfNode(children, n)
	if idx < 0 {
		return NilNode
	}
	if idx+1 < len(children) {
		return children[idx+1]
	}
	if idx-1 >= 0 {
		return children[idx-1]
	}
	return NilNode
}
