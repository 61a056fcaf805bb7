package wm

// normalize restores the structural invariants (no singleton split
// containers, no same-direction split nested in a split, a live focus
// target, in-range active tabs) after a command has mutated workspace ws.
// It is idempotent: running it twice in a row on the same tree is a no-op
// the second time.
func normalize(h *Hub, ws WorkspaceId) {
	w := h.store.workspace(ws)

	// redirect maps a container id that got collapsed or folded away to the
	// node that now stands in its place, so focus and last-active pointers
	// aimed at a now-gone container can be rewritten instead of just lost.
	redirect := make(map[ContainerId]NodeId)

	if !w.root.IsNil() {
		newRoot := simplifyNode(h, w.root, redirect)
		w.root = newRoot
		if !newRoot.IsNil() {
			h.store.setParent(newRoot, workspaceNode(ws))
		}
	}

	w.focused = resolveThroughRedirects(h, ws, w.focused, redirect)
	repairContainerMemory(h, ws, redirect)
	clampActiveTabs(h, w.root)
}

// simplifyNode recursively collapses and folds node's subtree and returns
// the node that should occupy node's former slot (itself, unless it was a
// container that collapsed or folded away).
func simplifyNode(h *Hub, node NodeId, redirect map[ContainerId]NodeId) NodeId {
	c, ok := node.AsContainer()
	if !ok {
		return node // windows and floats are leaves; nothing to simplify
	}
	return simplifyContainer(h, c, redirect)
}

func simplifyContainer(h *Hub, id ContainerId, redirect map[ContainerId]NodeId) NodeId {
	cd := h.store.container(id)

	newChildren := make([]NodeId, 0, len(cd.children))
	for _, child := range cd.children {
		simplified := simplifyNode(h, child, redirect)
		if simplified.IsNil() {
			continue
		}

		// Fold: a split container whose child is a split container of the
		// same direction gets its grandchildren spliced in directly.
		if cd.layout.IsSplit() {
			if childId, ok := simplified.AsContainer(); ok {
				childData := h.store.container(childId)
				if childData.layout.IsSplit() && childData.layout.Direction == cd.layout.Direction {
					redirect[childId] = containerNode(id)
					newChildren = append(newChildren, childData.children...)
					h.store.removeContainer(childId)
					continue
				}
			}
		}
		newChildren = append(newChildren, simplified)
	}
	cd.children = newChildren
	for _, child := range newChildren {
		h.store.setParent(child, containerNode(id))
	}

	if len(cd.children) < 2 {
		var lone NodeId
		if len(cd.children) == 1 {
			lone = cd.children[0]
		}
		redirect[id] = lone
		h.store.removeContainer(id)
		return lone
	}

	return containerNode(id)
}

// resolveThroughRedirects follows the redirect chain for a focus or
// last-active pointer, then falls back to repair rules if the result still
// doesn't resolve to a live node.
func resolveThroughRedirects(h *Hub, ws WorkspaceId, n NodeId, redirect map[ContainerId]NodeId) NodeId {
	for {
		c, ok := n.AsContainer()
		if !ok {
			break
		}
		repl, found := redirect[c]
		if !found {
			break
		}
		n = repl
	}
	if n.IsNil() || !h.store.exists(n) {
		return firstPreorder(h, ws)
	}
	return n
}

// repairContainerMemory drops or redirects each remaining container's
// last-active-child memory so it never references a node that no longer
// exists or is no longer one of its children (a folded child redirects to
// the container itself, so that memory is dropped).
func repairContainerMemory(h *Hub, ws WorkspaceId, redirect map[ContainerId]NodeId) {
	for _, cd := range h.store.containers {
		if cd.lastActive.IsNil() {
			continue
		}
		resolved := resolveThroughRedirectsNoFallback(cd.lastActive, redirect)
		if resolved.IsNil() || !h.store.exists(resolved) || indexOfNode(cd.children, resolved) < 0 {
			cd.lastActive = NilNode
			continue
		}
		cd.lastActive = resolved
	}
}

func resolveThroughRedirectsNoFallback(n NodeId, redirect map[ContainerId]NodeId) NodeId {
	for {
		c, ok := n.AsContainer()
		if !ok {
			return n
		}
		repl, found := redirect[c]
		if !found {
			return n
		}
		n = repl
	}
}

// clampActiveTabs walks every remaining tabbed container under root and
// clamps its active tab into range. Precise "which neighbor becomes active"
// bookkeeping happens at detach time (see detachChild); this is the
// backstop for any path that didn't go through detachChild.
func clampActiveTabs(h *Hub, root NodeId) {
	c, ok := root.AsContainer()
	if !ok {
		return
	}
	cd := h.store.container(c)
	if cd.layout.IsTabbed() {
		if cd.layout.ActiveTab < 0 {
			cd.layout.ActiveTab = 0
		}
		if cd.layout.ActiveTab >= len(cd.children) {
			cd.layout.ActiveTab = len(cd.children) - 1
		}
	}
	for _, child := range cd.children {
		clampActiveTabs(h, child)
	}
}

// firstPreorder returns the first node in a preorder walk of ws's tiling
// tree, preferring a leaf (window or float) over the root container itself,
// or NilNode if the workspace is empty.
func firstPreorder(h *Hub, ws WorkspaceId) NodeId {
	w := h.store.workspace(ws)
	if w.root.IsNil() {
		if len(w.floats) > 0 {
			return floatNode(w.floats[0])
		}
		return NilNode
	}
	return firstLeafPreorder(h, w.root)
}

func firstLeafPreorder(h *Hub, n NodeId) NodeId {
	c, ok := n.AsContainer()
	if !ok {
		return n
	}
	for _, child := range h.store.container(c).children {
		if leaf := firstLeafPreorder(h, child); !leaf.IsNil() {
			return leaf
		}
	}
	return NilNode
}
