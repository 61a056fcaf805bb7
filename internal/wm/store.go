package wm

// store is the node arena: it owns every container, window, float, and
// workspace by id, plus the counters that mint new ids. Callers never hold
// direct references into the arena, only ids, so rewrites can reparent and
// splice freely without leaving dangling pointers behind.
type store struct {
	containers map[ContainerId]*containerNodeData
	windows    map[WindowId]*windowNodeData
	floats     map[FloatId]*floatNodeData
	workspaces map[WorkspaceId]*workspaceData

	nextContainer ContainerId
	nextWindow    WindowId
	nextFloat     FloatId
}

func newStore() *store {
	return &store{
		containers: make(map[ContainerId]*containerNodeData),
		windows:    make(map[WindowId]*windowNodeData),
		floats:     make(map[FloatId]*floatNodeData),
		workspaces: make(map[WorkspaceId]*workspaceData),
	}
}

func (s *store) allocContainer(layout ContainerLayout, parent NodeId, children []NodeId) ContainerId {
	id := s.nextContainer
	s.nextContainer++
	s.containers[id] = &containerNodeData{
		id:       id,
		parent:   parent,
		layout:   layout,
		children: children,
	}
	for _, c := range children {
		s.setParent(c, containerNode(id))
	}
	return id
}

func (s *store) allocWindow(name string, parent NodeId) WindowId {
	id := s.nextWindow
	s.nextWindow++
	s.windows[id] = &windowNodeData{id: id, parent: parent, name: name}
	return id
}

func (s *store) allocFloat(rect Rect, parent WorkspaceId) FloatId {
	id := s.nextFloat
	s.nextFloat++
	s.floats[id] = &floatNodeData{id: id, parent: parent, rect: rect}
	return id
}

// workspace returns the workspace state for id, materializing an empty
// workspace on first access.
func (s *store) workspace(id WorkspaceId) *workspaceData {
	ws, ok := s.workspaces[id]
	if !ok {
		ws = &workspaceData{id: id, name: int(id)}
		s.workspaces[id] = ws
	}
	return ws
}

func (s *store) removeContainer(id ContainerId) { delete(s.containers, id) }
func (s *store) removeWindow(id WindowId)        { delete(s.windows, id) }
func (s *store) removeFloat(id FloatId)          { delete(s.floats, id) }

// setParent updates the stored parent pointer of n. It does not touch any
// children list; callers are responsible for keeping both ends consistent.
func (s *store) setParent(n NodeId, parent NodeId) {
	switch n.kind {
	case kindContainer:
		s.containers[ContainerId(n.val)].parent = parent
	case kindWindow:
		s.windows[WindowId(n.val)].parent = parent
	}
}

// parentOf returns the parent of n. Floats and workspaces are not
// reparentable so this only needs to handle containers and windows in the
// general tree walk; it still reports a workspace parent for floats.
func (s *store) parentOf(n NodeId) NodeId {
	switch n.kind {
	case kindContainer:
		return s.containers[ContainerId(n.val)].parent
	case kindWindow:
		return s.windows[WindowId(n.val)].parent
	case kindFloat:
		return workspaceNode(s.floats[FloatId(n.val)].parent)
	default:
		return NilNode
	}
}

// childrenOf returns the ordered children of a container, or nil for any
// other node kind.
func (s *store) childrenOf(n NodeId) []NodeId {
	c, ok := n.AsContainer()
	if !ok {
		return nil
	}
	return s.containers[c].children
}

func (s *store) container(id ContainerId) *containerNodeData { return s.containers[id] }
func (s *store) window(id WindowId) *windowNodeData           { return s.windows[id] }
func (s *store) float(id FloatId) *floatNodeData               { return s.floats[id] }

// exists reports whether n currently refers to a live node.
func (s *store) exists(n NodeId) bool {
	switch n.kind {
	case kindContainer:
		_, ok := s.containers[ContainerId(n.val)]
		return ok
	case kindWindow:
		_, ok := s.windows[WindowId(n.val)]
		return ok
	case kindFloat:
		_, ok := s.floats[FloatId(n.val)]
		return ok
	case kindWorkspace:
		return true // workspaces always "exist"; they're lazily materialized
	default:
		return false
	}
}
