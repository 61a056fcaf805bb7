package wm

// Layout parameters. Distances are in the same units as the screen
// rectangle; the engine has no notion of pixels vs. cells.
const (
	outerGap       = 1.0 // leaf inset from its allocated cell
	tabStripHeight = 2.0 // strip reserved at the top of a tabbed container
)

// layoutWorkspace deterministically assigns a rectangle to every descendant
// of ws's tiling root and to every float, using h's screen rectangle. It is
// a pure function of the tree and the screen: calling it again on an
// unchanged tree reproduces identical rectangles.
func layoutWorkspace(h *Hub, ws WorkspaceId) {
	w := h.store.workspace(ws)
	if !w.root.IsNil() {
		layoutNode(h, w.root, h.screen)
	}
	// Floats carry their own absolute rectangle verbatim; nothing to do.
}

// layoutNode assigns rect to n and recurses into its children per its kind.
func layoutNode(h *Hub, n NodeId, rect Rect) {
	if c, ok := n.AsContainer(); ok {
		layoutContainer(h, c, rect)
		return
	}
	if win, ok := n.AsWindow(); ok {
		wd := h.store.window(win)
		wd.rect = insetRect(rect, outerGap)
		return
	}
	// Floats are positioned absolutely and never reached via tiling descent.
}

func insetRect(r Rect, gap float64) Rect {
	return Rect{X: r.X + gap, Y: r.Y + gap, W: r.W - 2*gap, H: r.H - 2*gap}
}

func layoutContainer(h *Hub, id ContainerId, rect Rect) {
	cd := h.store.container(id)
	cd.rect = rect

	if cd.layout.IsTabbed() {
		layoutTabbed(h, cd, rect)
		return
	}
	layoutSplit(h, cd, rect)
}

// layoutSplit divides rect evenly among a split container's children along
// its direction. Siblings are laid out edge-to-edge with no gap of their
// own; the visual gap seen between rendered windows comes entirely from
// each leaf window's own outer_gap inset meeting its neighbor's.
func layoutSplit(h *Hub, cd *containerNodeData, rect Rect) {
	k := len(cd.children)
	if k == 0 {
		return
	}
	if cd.layout.Direction == Horizontal {
		childW := rect.W / float64(k)
		x := rect.X
		for _, child := range cd.children {
			layoutNode(h, child, Rect{X: x, Y: rect.Y, W: childW, H: rect.H})
			x += childW
		}
		return
	}
	childH := rect.H / float64(k)
	y := rect.Y
	for _, child := range cd.children {
		layoutNode(h, child, Rect{X: rect.X, Y: y, W: rect.W, H: childH})
		y += childH
	}
}

func layoutTabbed(h *Hub, cd *containerNodeData, rect Rect) {
	content := Rect{X: rect.X, Y: rect.Y + tabStripHeight, W: rect.W, H: rect.H - tabStripHeight}
	// Every tab occupies the same content area, not just the active one:
	// switching the active tab is then a pure read-model change, with no
	// relayout needed.
	for _, child := range cd.children {
		layoutNode(h, child, content)
	}
}
