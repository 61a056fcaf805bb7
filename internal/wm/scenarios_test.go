package wm

import (
	"strings"
	"testing"
)

func TestThreeHorizontalFocusLeft(t *testing.T) {
	h := Setup()
	w0 := h.InsertTiling("")
	w1 := h.InsertTiling("")
	w2 := h.InsertTiling("")

	h.FocusDirection(Left)
	win, ok := h.Focused().AsWindow()
	if !ok || win != w1 {
		t.Fatalf("after first focus_left: got %v, want %v", win, w1)
	}

	rects := map[WindowId]Rect{
		w0: h.store.window(w0).rect,
		w1: h.store.window(w1).rect,
		w2: h.store.window(w2).rect,
	}
	want := map[WindowId]Rect{
		w0: {X: 1, Y: 1, W: 48, H: 28},
		w1: {X: 51, Y: 1, W: 48, H: 28},
		w2: {X: 101, Y: 1, W: 48, H: 28},
	}
	for id, r := range want {
		if rects[id] != r {
			t.Errorf("window %v rect = %+v, want %+v", id, rects[id], r)
		}
	}

	h.FocusDirection(Left)
	win, ok = h.Focused().AsWindow()
	if !ok || win != w0 {
		t.Fatalf("after second focus_left: got %v, want %v", win, w0)
	}
}

func TestThreeVerticalFocusUp(t *testing.T) {
	h := Setup()
	w0 := h.InsertTiling("")
	h.ToggleSpawnDirection()
	w1 := h.InsertTiling("")
	w2 := h.InsertTiling("")

	h.FocusDirection(Up)
	win, ok := h.Focused().AsWindow()
	if !ok || win != w1 {
		t.Fatalf("focus_up: got %v, want %v", win, w1)
	}

	rects := map[WindowId]Rect{
		w0: h.store.window(w0).rect,
		w1: h.store.window(w1).rect,
		w2: h.store.window(w2).rect,
	}
	want := map[WindowId]Rect{
		w0: {X: 1, Y: 1, W: 148, H: 8},
		w1: {X: 1, Y: 11, W: 148, H: 8},
		w2: {X: 1, Y: 21, W: 148, H: 8},
	}
	for id, r := range want {
		if rects[id] != r {
			t.Errorf("window %v rect = %+v, want %+v", id, rects[id], r)
		}
	}
}

func TestCrossContainerDiveUsesLastActive(t *testing.T) {
	h := Setup()
	h.InsertTiling("") // w0
	h.InsertTiling("") // w1, sibling of w0
	h.ToggleSpawnDirection()
	w2 := h.InsertTiling("")
	h.InsertTiling("") // w3

	h.FocusDirection(Up)
	h.FocusDirection(Left)
	h.FocusDirection(Right)

	win, ok := h.Focused().AsWindow()
	if !ok || win != w2 {
		t.Fatalf("focus_right after dive: got %v, want last-active %v", win, w2)
	}
}

// A tabbed container does not intercept focus from outside it; from
// outside, focus_right enters its active tab.
func TestTabbedContainerIgnoredFromOutsideUntilEntered(t *testing.T) {
	h := Setup()
	w0 := h.InsertTiling("")
	h.InsertTiling("") // w1, horizontal sibling of w0 under the default AsSibling mode
	h.ToggleSpawnMode() // AsPerpendicular
	h.ToggleSpawnMode() // AsTab
	h.InsertTiling("")
	w3 := h.InsertTiling("")

	h.SetFocus(WindowRef(w0))
	h.FocusDirection(Left)
	win, ok := h.Focused().AsWindow()
	if !ok || win != w0 {
		t.Fatalf("focus_left from w0 should stay put, got %v", win)
	}

	h.FocusDirection(Right)
	win, ok = h.Focused().AsWindow()
	if !ok || win != w3 {
		t.Fatalf("focus_right from w0 should enter active tab %v, got %v", w3, win)
	}
}

// toggle_spawn_mode three times is a no-op cycle.
func TestSpawnModeCycleLength3(t *testing.T) {
	h := Setup()
	start := h.SpawnMode()
	h.ToggleSpawnMode()
	h.ToggleSpawnMode()
	h.ToggleSpawnMode()
	if h.SpawnMode() != start {
		t.Fatalf("spawn mode after 3 toggles = %v, want %v", h.SpawnMode(), start)
	}
}

// toggle_direction twice on the same focus restores the tree.
func TestToggleDirectionTwiceIsIdentity(t *testing.T) {
	h := Setup()
	h.InsertTiling("")
	h.InsertTiling("")
	before := h.Snapshot(0)

	h.ToggleDirection()
	h.ToggleDirection()

	after := h.Snapshot(0)
	if before != after {
		t.Fatalf("toggle_direction twice changed the tree:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// insert_tiling followed by deleting that same window restores the prior
// tree shape and focus.
func TestInsertThenDeleteRestoresShape(t *testing.T) {
	h := Setup()
	h.InsertTiling("")
	h.InsertTiling("")
	before := h.Snapshot(0)
	beforeFocus := h.Focused()

	w := h.InsertTiling("")
	h.DeleteWindow(windowNode(w))

	after := h.Snapshot(0)
	if before != after {
		t.Fatalf("insert+delete changed the tree:\nbefore:\n%s\nafter:\n%s", before, after)
	}
	if h.Focused() != beforeFocus {
		t.Fatalf("insert+delete changed focus: before=%v after=%v", beforeFocus, h.Focused())
	}
}

// Directional focus moves never change tree structure.
func TestDirectionalFocusNeverMutatesTree(t *testing.T) {
	h := Setup()
	h.InsertTiling("")
	h.InsertTiling("")
	h.InsertTiling("")
	before := h.Snapshot(0)

	h.FocusDirection(Left)
	h.FocusDirection(Right)
	h.FocusDirection(Right)
	h.FocusDirection(Left)
	h.FocusDirection(Right) // back on the starting window, so focus matches too

	after := h.Snapshot(0)
	if before != after {
		t.Fatalf("directional focus changed the tree:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// Re-running layout on an unchanged tree yields identical rectangles.
func TestLayoutIsDeterministic(t *testing.T) {
	h := Setup()
	w0 := h.InsertTiling("")
	h.InsertTiling("")

	r1 := h.store.window(w0).rect
	layoutWorkspace(h, 0)
	r2 := h.store.window(w0).rect

	if r1 != r2 {
		t.Fatalf("re-layout changed rect: %+v vs %+v", r1, r2)
	}
}

// toggle_direction on a workspace-level focus (reached via focus_parent on
// a sole root) is a no-op, not a hang.
func TestToggleDirectionOnWorkspaceFocusIsNoOp(t *testing.T) {
	h := Setup()
	h.InsertTiling("")
	h.FocusParent()
	if !h.Focused().IsWorkspace() {
		t.Fatalf("expected focus_parent on a sole root to land on the workspace")
	}
	h.ToggleDirection()
	if !h.Focused().IsWorkspace() {
		t.Fatalf("toggle_direction on workspace focus should leave focus alone")
	}
}

// set_focus(WorkspaceRef(...)) is total: it must not hang walking an
// ancestor chain from the workspace node itself.
func TestSetFocusToWorkspaceIsTotal(t *testing.T) {
	h := Setup()
	h.InsertTiling("")
	h.SetFocus(WorkspaceRef(0))
	if !h.Focused().IsWorkspace() {
		t.Fatalf("expected focus on the workspace after set_focus(WorkspaceRef)")
	}
}

// delete_window also removes floats, not just tiled windows.
func TestDeleteWindowRemovesFocusedFloat(t *testing.T) {
	h := Setup()
	h.InsertTiling("")
	f := h.InsertFloat(Dimension{X: 1, Y: 1, W: 10, H: 10})
	if !h.Focused().IsFloat() {
		t.Fatalf("expected the newly inserted float to be focused")
	}

	h.DeleteWindow(FloatRef(f))

	if h.Focused().IsFloat() {
		t.Fatalf("float should be gone after delete_window")
	}
	if h.store.exists(FloatRef(f)) {
		t.Fatalf("float %v should no longer exist in the store", f)
	}
}

// Moving a node into a workspace whose root is a differing-axis split
// appends it as a plain sibling; it does not get wrapped in a synthetic
// container.
func TestMoveIntoDifferingAxisRootAppendsDirectly(t *testing.T) {
	h := Setup()
	h.FocusWorkspace(1)
	h.InsertTiling("")       // workspace 1's root: a lone window
	h.ToggleSpawnDirection() // AsPerpendicular (vertical)
	h.InsertTiling("")       // wraps the root into a vertical pair

	root := h.store.workspace(1).root
	rc, ok := root.AsContainer()
	if !ok || h.store.container(rc).layout.Direction != Vertical {
		t.Fatalf("expected workspace 1's root to be a vertical split")
	}
	childCountBefore := len(h.store.container(rc).children)

	h.FocusWorkspace(0)
	h.InsertTiling("")
	h.MoveFocusedToWorkspace(1)

	rootAfter := h.store.workspace(1).root
	rcAfter, ok := rootAfter.AsContainer()
	if !ok || rcAfter != rc {
		t.Fatalf("move into a differing-axis split root should not replace it with a new container, got %v", rootAfter)
	}
	if got := len(h.store.container(rcAfter).children); got != childCountBefore+1 {
		t.Fatalf("expected the moved node appended as a plain child: got %d children, want %d", got, childCountBefore+1)
	}
}

// Render only draws the active tab of a tabbed container, not every tab
// stacked on the same rectangle.
func TestRenderDrawsOnlyActiveTab(t *testing.T) {
	h := Setup()
	h.InsertTiling("one")
	h.ToggleSpawnMode() // AsPerpendicular
	h.ToggleSpawnMode() // AsTab
	h.InsertTiling("two")
	h.InsertTiling("three")

	out := h.Render(0)
	if !strings.Contains(out, "three") {
		t.Fatalf("expected the active tab's label to be drawn:\n%s", out)
	}
	if strings.Contains(out, "one") || strings.Contains(out, "two") {
		t.Fatalf("expected only the active tab's window box to be drawn:\n%s", out)
	}
}

// Moving a subtree out and back preserves the workspace's window set.
func TestMoveOutAndBackPreservesWindowSet(t *testing.T) {
	h := Setup()
	w0 := h.InsertTiling("")
	h.InsertTiling("")
	_ = w0

	h.MoveFocusedToWorkspace(1)
	h.FocusWorkspace(1)
	h.MoveFocusedToWorkspace(0)

	count := 0
	for id := range h.store.windows {
		if h.owningWorkspace(windowNode(id)) == 0 {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("workspace 0 window count after round trip move = %d, want 2", count)
	}
}
