package wm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Snapshot renders ws's tree as an indented text dump: one line per node,
// children indented two spaces under their parent. It is meant for tests
// and debugging, not for users — Render below is the user-facing view.
func (h *Hub) Snapshot(ws WorkspaceId) string {
	w := h.store.workspace(ws)
	var b strings.Builder
	fmt.Fprintf(&b, "%s focused=%s\n", ws, focusLabel(w.focused))
	if !w.root.IsNil() {
		h.dumpNode(&b, w.root, 1)
	}
	for _, fid := range w.floats {
		fd := h.store.float(fid)
		fmt.Fprintf(&b, "  %s %s\n", fid, rectLabel(fd.rect))
	}
	return b.String()
}

func focusLabel(n NodeId) string {
	if n.IsNil() {
		return "none"
	}
	return n.String()
}

func rectLabel(r Rect) string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f,%.2f)", r.X, r.Y, r.W, r.H)
}

func (h *Hub) dumpNode(b *strings.Builder, n NodeId, depth int) {
	indent := strings.Repeat("  ", depth)
	if c, ok := n.AsContainer(); ok {
		cd := h.store.container(c)
		fmt.Fprintf(b, "%s%s %s %s\n", indent, c, layoutLabel(cd.layout), rectLabel(cd.rect))
		for _, child := range cd.children {
			h.dumpNode(b, child, depth+1)
		}
		return
	}
	if win, ok := n.AsWindow(); ok {
		wd := h.store.window(win)
		fmt.Fprintf(b, "%s%s %q %s\n", indent, win, wd.name, rectLabel(wd.rect))
		return
	}
}

func layoutLabel(l ContainerLayout) string {
	if l.IsTabbed() {
		return fmt.Sprintf("tabbed(active=%d)", l.ActiveTab)
	}
	return "split " + l.Direction.String()
}

// Render draws ws as an ASCII grid sized to the hub's screen rectangle: a
// '+'/'-'/'|' box per window, '*' in place of any of those on a window
// that is focused or a descendant of the focused container, and a one-line
// tab strip across the top of every tabbed container.
func (h *Hub) Render(ws WorkspaceId) string {
	width := int(math.Round(h.screen.W))
	height := int(math.Round(h.screen.H))
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	w := h.store.workspace(ws)
	if !w.root.IsNil() {
		h.renderNode(grid, w.root, ws)
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

func (h *Hub) renderNode(grid [][]rune, n NodeId, ws WorkspaceId) {
	if c, ok := n.AsContainer(); ok {
		cd := h.store.container(c)
		if cd.layout.IsTabbed() {
			h.drawTabStrip(grid, cd)
			idx := cd.layout.ActiveTab
			if idx >= 0 && idx < len(cd.children) {
				h.renderNode(grid, cd.children[idx], ws)
			}
			return
		}
		for _, child := range cd.children {
			h.renderNode(grid, child, ws)
		}
		return
	}
	if win, ok := n.AsWindow(); ok {
		wd := h.store.window(win)
		mark := byte('+')
		if h.isFocusedDescendant(ws, windowNode(win)) {
			mark = '*'
		}
		drawBox(grid, wd.rect, mark, windowLabel(win, wd.name))
	}
}

func windowLabel(id WindowId, name string) string {
	if name == "" {
		return "W" + strconv.Itoa(int(id))
	}
	return name
}

// isFocusedDescendant reports whether n is the workspace's focused node, or
// a descendant of it when the focused node is a container.
func (h *Hub) isFocusedDescendant(ws WorkspaceId, n NodeId) bool {
	focused := h.store.workspace(ws).focused
	if focused.IsNil() {
		return false
	}
	if focused == n {
		return true
	}
	fc, ok := focused.AsContainer()
	if !ok {
		return false
	}
	for _, step := range h.ancestorChain(n) {
		if c, ok := step.parent.AsContainer(); ok && c == fc {
			return true
		}
	}
	return false
}

func drawBox(grid [][]rune, r Rect, corner byte, label string) {
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.X+r.W))-1, int(math.Round(r.Y+r.H))-1
	height := len(grid)
	if height == 0 {
		return
	}
	width := len(grid[0])
	cornerRune, side, edge := rune(corner), rune(corner), rune(corner)
	if corner != '*' {
		side, edge = '|', '-'
	}

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= width {
				continue
			}
			switch {
			case (x == x0 || x == x1) && (y == y0 || y == y1):
				grid[y][x] = cornerRune
			case y == y0 || y == y1:
				grid[y][x] = edge
			case x == x0 || x == x1:
				grid[y][x] = side
			}
		}
	}

	labelY := y0 + 1
	labelX := x0 + 1
	if labelY >= 0 && labelY < height {
		for i, r := range label {
			x := labelX + i
			if x <= 0 || x >= x1 || x >= width {
				break
			}
			grid[labelY][x] = r
		}
	}
}

func (h *Hub) drawTabStrip(grid [][]rune, cd *containerNodeData) {
	y := int(math.Round(cd.rect.Y))
	if y < 0 || y >= len(grid) {
		return
	}
	x := int(math.Round(cd.rect.X))
	width := len(grid[0])

	var labels []string
	for i, child := range cd.children {
		labels = append(labels, tabLabel(child, i == cd.layout.ActiveTab))
	}
	strip := strings.Join(labels, " ")
	for i, r := range strip {
		pos := x + i
		if pos < 0 || pos >= width {
			break
		}
		grid[y][pos] = r
	}
}

func tabLabel(n NodeId, active bool) string {
	var label string
	if c, ok := n.AsContainer(); ok {
		label = "C" + strconv.Itoa(int(c))
	} else if win, ok := n.AsWindow(); ok {
		label = "W" + strconv.Itoa(int(win))
	} else {
		label = "?"
	}
	if active {
		return "[" + label + "]"
	}
	return label
}
