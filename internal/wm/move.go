package wm

// MoveFocusedToWorkspace relocates the focused node (window, float, or
// container) to another workspace. The source workspace repairs
// focus exactly as delete_window does (right/below sibling, then
// left/above, then the parent container); the moved subtree becomes the
// target workspace's new focus. The current workspace does not change —
// moving a window to workspace 3 does not switch you to workspace 3.
func (h *Hub) MoveFocusedToWorkspace(target WorkspaceId) {
	s := h.Focused()
	if s.IsNil() || s.IsWorkspace() {
		return
	}
	sourceWs := h.current
	if target == sourceWs {
		return
	}

	sw := h.store.workspace(sourceWs)
	parent := h.store.parentOf(s)

	nextFocus := siblingFocusCandidate(h, parent, s)
	if nextFocus.IsNil() && !parent.IsWorkspace() {
		nextFocus = parent
	}

	if fid, ok := s.AsFloat(); ok {
		h.detachFloat(sourceWs, fid)
	} else if parent.IsWorkspace() {
		sw.root = NilNode
	} else {
		h.detachChild(parent, s)
	}

	if !nextFocus.IsNil() {
		h.recordFocusPath(nextFocus)
	}
	sw.focused = nextFocus

	h.attachToWorkspace(target, s)

	tw := h.store.workspace(target)
	h.recordFocusPath(s)
	tw.focused = s

	h.runCommand(sourceWs, target)
}

// attachToWorkspace grafts s onto target's tiling tree: it becomes the sole
// root if target is empty, wraps a lone window root into a new horizontal
// split, or joins an existing container root as a trailing child (a
// trailing tab for a tabbed root, a trailing child of either axis for a
// split root; normalize's fold step reconciles a differing axis
// afterward). Floats just join the target's float list verbatim.
func (h *Hub) attachToWorkspace(target WorkspaceId, s NodeId) {
	tw := h.store.workspace(target)

	if fid, ok := s.AsFloat(); ok {
		h.store.floats[fid].parent = target
		tw.floats = append(tw.floats, fid)
		return
	}

	if tw.root.IsNil() {
		tw.root = s
		h.store.setParent(s, workspaceNode(target))
		return
	}

	if _, ok := tw.root.AsWindow(); ok {
		h.wrapInNewContainer(target, tw.root, SplitH(), s)
		return
	}

	rc, _ := tw.root.AsContainer()
	rcd := h.store.container(rc)
	if rcd.layout.IsTabbed() {
		h.appendAsActiveTab(rc, s)
		return
	}
	h.store.appendChild(rc, s)
}

func (h *Hub) detachFloat(ws WorkspaceId, fid FloatId) {
	w := h.store.workspace(ws)
	out := w.floats[:0]
	for _, existing := range w.floats {
		if existing != fid {
			out = append(out, existing)
		}
	}
	w.floats = out
}
