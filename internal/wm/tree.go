package wm

// tree.go holds the low-level structural edits shared by every command:
// reading/writing a node's slot in its parent, splicing children lists, and
// walking ancestors. Nothing here enforces invariants; normalize.go does
// that after every command runs.

// setChildAt replaces the child at position idx in container c's children.
func (s *store) setChildAt(c ContainerId, idx int, child NodeId) {
	cd := s.containers[c]
	cd.children[idx] = child
	s.setParent(child, containerNode(c))
}

// indexOfChild returns the position of child in parent's children, or -1.
func (s *store) indexOfChild(parent NodeId, child NodeId) int {
	for i, c := range s.childrenOf(parent) {
		if c == child {
			return i
		}
	}
	return -1
}

// replaceInParent swaps oldNode for newNode wherever oldNode currently sits:
// in a container's children list, or as a workspace's tiling root.
func (h *Hub) replaceInParent(ws WorkspaceId, parent NodeId, oldNode, newNode NodeId) {
	if parent.IsWorkspace() {
		h.store.workspace(ws).root = newNode
	} else if c, ok := parent.AsContainer(); ok {
		cd := h.store.container(c)
		for i, child := range cd.children {
			if child == oldNode {
				cd.children[i] = newNode
				break
			}
		}
	}
	h.store.setParent(newNode, parent)
}

// removeChild deletes child from container c's children list, preserving
// the order of the remainder.
func (s *store) removeChild(c ContainerId, child NodeId) {
	cd := s.containers[c]
	out := cd.children[:0]
	for _, existing := range cd.children {
		if existing != child {
			out = append(out, existing)
		}
	}
	cd.children = out
	if cd.lastActive == child {
		cd.lastActive = NilNode
	}
}

// appendChild appends child to the end of container c's children and
// reparents it.
func (s *store) appendChild(c ContainerId, child NodeId) {
	cd := s.containers[c]
	cd.children = append(cd.children, child)
	s.setParent(child, containerNode(c))
}

// insertChildAfter inserts child immediately after the element at position
// idx in container c's children.
func (s *store) insertChildAfter(c ContainerId, idx int, child NodeId) {
	cd := s.containers[c]
	children := cd.children
	out := make([]NodeId, 0, len(children)+1)
	out = append(out, children[:idx+1]...)
	out = append(out, child)
	out = append(out, children[idx+1:]...)
	cd.children = out
	s.setParent(child, containerNode(c))
}

// spliceReplace replaces the element at idx in container c's children with
// the full list `with`, preserving order.
func (s *store) spliceReplace(c ContainerId, idx int, with []NodeId) {
	cd := s.containers[c]
	children := cd.children
	out := make([]NodeId, 0, len(children)-1+len(with))
	out = append(out, children[:idx]...)
	out = append(out, with...)
	out = append(out, children[idx+1:]...)
	cd.children = out
	for _, child := range with {
		s.setParent(child, containerNode(c))
	}
}

// detachChild removes child from parent's children list (parent must be a
// container) and, if parent is tabbed, keeps its active tab pointed at a
// sensible neighbor: the new active tab is min(old_index, new_last_index)
// when the active tab itself was the one removed.
func (h *Hub) detachChild(parent NodeId, child NodeId) {
	c, ok := parent.AsContainer()
	if !ok {
		return
	}
	cd := h.store.container(c)
	idx := -1
	for i, existing := range cd.children {
		if existing == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	cd.children = append(cd.children[:idx:idx], cd.children[idx+1:]...)
	if cd.lastActive == child {
		cd.lastActive = NilNode
	}
	if cd.layout.IsTabbed() {
		switch {
		case idx < cd.layout.ActiveTab:
			cd.layout.ActiveTab--
		case idx == cd.layout.ActiveTab:
			if cd.layout.ActiveTab >= len(cd.children) {
				cd.layout.ActiveTab = len(cd.children) - 1
			}
		}
		if cd.layout.ActiveTab < 0 {
			cd.layout.ActiveTab = 0
		}
	}
}

// ancestorStep is one link of an ancestor walk: parent is the container (or
// workspace) found at this level, and childNode is the node inside it that
// leads back down toward the node the walk started from.
type ancestorStep struct {
	parent    NodeId
	childNode NodeId
}

// ancestorChain walks from n up to its owning workspace, inclusive of the
// final (workspace, root) step. It works for any live node: containers,
// windows, and floats all know their true owning workspace.
func (h *Hub) ancestorChain(n NodeId) []ancestorStep {
	var steps []ancestorStep
	cur := n
	for {
		parent := h.store.parentOf(cur)
		steps = append(steps, ancestorStep{parent: parent, childNode: cur})
		if parent.IsWorkspace() {
			return steps
		}
		cur = parent
	}
}

// owningWorkspace returns the workspace that n belongs to.
func (h *Hub) owningWorkspace(n NodeId) WorkspaceId {
	if ws, ok := n.AsWorkspace(); ok {
		return ws
	}
	chain := h.ancestorChain(n)
	ws, _ := chain[len(chain)-1].parent.AsWorkspace()
	return ws
}
