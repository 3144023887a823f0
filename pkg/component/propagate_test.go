package component

import (
	"testing"
)

func layoutTree(t *testing.T, root *Node) {
	t.Helper()
	newUI(t, root).Layout(200, 200)
}

func TestContainsUsesBorderBox(t *testing.T) {
	n := New(KindPanel, "n")
	n.SetStyle(decl(t, map[string]any{"x": 10, "y": 10, "width": 50, "height": 50, "margin": 5}))
	root := New(KindPanel, "root").Append(n)
	layoutTree(t, root)

	if !n.Contains(20, 20) {
		t.Error("point inside the border box should hit")
	}
	if n.Contains(12, 12) {
		t.Error("the margin ring is not part of the hit area")
	}
	if n.Contains(100, 100) {
		t.Error("points outside miss")
	}
}

func TestPropagateDispatchesDeepestFirst(t *testing.T) {
	c := New(KindLabel, "c")
	c.SetStyle(decl(t, map[string]any{"width": 40, "height": 40}))
	b := New(KindPanel, "b")
	b.SetStyle(decl(t, map[string]any{"width": 80, "height": 80}))
	b.Append(c)
	a := New(KindPanel, "a").Append(b)
	layoutTree(t, a)

	var order []string
	a.Propagate(20, 20, func(n *Node, _, _ float64) bool {
		order = append(order, n.ID())
		return false
	}, nil)

	if len(order) != 3 || order[0] != "c" || order[1] != "b" || order[2] != "a" {
		t.Errorf("dispatch order = %v, want [c b a]", order)
	}
}

func TestPropagateVetoStopsAscent(t *testing.T) {
	c := New(KindLabel, "c")
	c.SetStyle(decl(t, map[string]any{"width": 40, "height": 40}))
	b := New(KindPanel, "b")
	b.SetStyle(decl(t, map[string]any{"width": 80, "height": 80}))
	b.Append(c)
	a := New(KindPanel, "a").Append(b)
	layoutTree(t, a)

	var trace []*Node
	consumed := a.Propagate(20, 20, func(n *Node, _, _ float64) bool {
		return n.ID() == "b"
	}, &trace)

	if !consumed {
		t.Error("a consumed event reports true")
	}
	for _, n := range trace {
		if n.ID() == "a" {
			t.Error("nodes above the consumer must not be visited")
		}
	}
	if len(trace) != 2 {
		t.Errorf("trace should hold c and b, got %d nodes", len(trace))
	}
}

func TestPropagateTopmostSiblingFirst(t *testing.T) {
	under := New(KindPanel, "under")
	under.SetStyle(decl(t, map[string]any{"width": 100, "height": 100}))
	over := New(KindPanel, "over")
	over.SetStyle(decl(t, map[string]any{"width": 100, "height": 100}))
	root := New(KindPanel, "root").Append(under, over)
	layoutTree(t, root)

	hit := root.HitTest(50, 50)
	if hit == nil || hit.ID() != "over" {
		t.Errorf("later siblings draw on top and hit first, got %v", hit)
	}
}

func TestPropagateDescendsThroughNonPropagatingNode(t *testing.T) {
	inner := New(KindLabel, "inner")
	inner.SetStyle(decl(t, map[string]any{"width": 40, "height": 40}))
	blocker := New(KindPanel, "blocker")
	blocker.SetStyle(decl(t, map[string]any{"width": 100, "height": 100, "propagateEvents": false}))
	blocker.Append(inner)
	root := New(KindPanel, "root").Append(blocker)
	layoutTree(t, root)

	// propagateEvents gates ancestor dispatch, never the downward walk:
	// the child is still hit-tested and visited first.
	var trace []*Node
	root.Propagate(20, 20, func(*Node, float64, float64) bool { return false }, &trace)

	if len(trace) != 3 || trace[0].ID() != "inner" || trace[1].ID() != "blocker" || trace[2].ID() != "root" {
		ids := make([]string, len(trace))
		for i, n := range trace {
			ids[i] = n.ID()
		}
		t.Errorf("trace = %v, want [inner blocker root]", ids)
	}

	if hit := root.HitTest(20, 20); hit == nil || hit.ID() != "inner" {
		t.Errorf("hit test resolves to the deepest node, got %v", hit)
	}
}

func TestPropagateTranslatesCoordinates(t *testing.T) {
	child := New(KindLabel, "child")
	child.SetStyle(decl(t, map[string]any{"x": 30, "y": 40, "width": 50, "height": 50}))
	parent := New(KindPanel, "parent")
	parent.SetStyle(decl(t, map[string]any{"width": 180, "height": 180, "padding": 10}))
	parent.Append(child)
	layoutTree(t, parent)

	var gotX, gotY float64
	parent.Propagate(45, 55, func(n *Node, x, y float64) bool {
		if n.ID() != "child" {
			return false
		}
		gotX, gotY = x, y
		return true
	}, nil)

	// 45 viewport - 10 padding - 30 child x = 5 into the child box.
	if gotX != 5 || gotY != 5 {
		t.Errorf("local coords = (%v,%v), want (5,5)", gotX, gotY)
	}
}

func TestPropagateAccountsForScroll(t *testing.T) {
	list := New(KindList, "items")
	for i := 0; i < 6; i++ {
		item := New(KindButton, "item"+string(rune('a'+i)))
		item.SetStyle(decl(t, map[string]any{"width": 50, "height": 30}))
		list.Append(item)
	}
	pane := New(KindPanel, "pane")
	pane.SetStyle(decl(t, map[string]any{"width": 100, "height": 100, "overflowY": "scroll"}))
	pane.Append(list)

	ui := newUI(t, New(KindPanel, "root").Append(pane))
	ui.Layout(200, 200)
	ui.Wheel(25, 50, 0, 80)

	// The last item spans y 150-180 in content space; scrolled down 80 it
	// occupies 70-100 on screen.
	hit := pane.HitTest(25, 90)
	if hit == nil || hit.ID() != "itemf" {
		t.Errorf("scrolled content shifts the hit area, got %v", hit)
	}
	if hit := pane.HitTest(25, 50); hit == nil || hit.ID() != "iteme" {
		t.Errorf("mid-pane click lands on the scrolled-to item, got %v", hit)
	}
}

func TestPropagateMissReturnsFalse(t *testing.T) {
	n := New(KindPanel, "n")
	n.SetStyle(decl(t, map[string]any{"width": 50, "height": 50}))
	root := New(KindPanel, "root").Append(n)
	layoutTree(t, root)

	visited := false
	if n.Propagate(150, 150, func(*Node, float64, float64) bool {
		visited = true
		return true
	}, nil) {
		t.Error("a miss must not consume")
	}
	if visited {
		t.Error("a miss must not visit")
	}
}
