package component

// Visit is one stop of a pointer-event walk. x and y are relative to the
// node's border-box origin. Returning true consumes the event and stops it
// climbing toward the root.
type Visit func(n *Node, x, y float64) bool

// Contains reports whether a point in the parent's content coordinates hits
// the node's border box. Margins are outside the hit area.
func (n *Node) Contains(x, y float64) bool {
	if n.box == nil {
		return false
	}
	bx := n.box.X + n.box.MarginLeft
	by := n.box.Y + n.box.MarginTop
	return x >= bx && x < bx+n.box.Width && y >= by && y < by+n.box.Height
}

// Propagate walks the subtree under a pointer position. Hit testing runs
// top-down: the point is translated into each node's content coordinates
// (accounting for content offset and scroll) and offered to children topmost
// first, unconditionally — event consumption is the visit's business, not
// the walk's. Dispatch runs bottom-up: visit fires on the deepest hit node
// first and climbs until some node consumes the event.
//
// x and y are in the coordinates of n's parent content box. trace, when
// non-nil, collects every visited node in dispatch order, consumed or not.
func (n *Node) Propagate(x, y float64, visit Visit, trace *[]*Node) bool {
	if !n.Contains(x, y) {
		return false
	}

	cx := x - (n.box.X + n.box.MarginLeft) - n.box.ContentOffsetX() + n.scrollX
	cy := y - (n.box.Y + n.box.MarginTop) - n.box.ContentOffsetY() + n.scrollY
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i].Propagate(cx, cy, visit, trace) {
			return true
		}
	}

	if trace != nil {
		*trace = append(*trace, n)
	}
	lx := x - (n.box.X + n.box.MarginLeft)
	ly := y - (n.box.Y + n.box.MarginTop)
	return visit(n, lx, ly)
}

// HitTest returns the deepest node under the point, or nil.
func (n *Node) HitTest(x, y float64) *Node {
	var hit *Node
	n.Propagate(x, y, func(m *Node, _, _ float64) bool {
		hit = m
		return true
	}, nil)
	return hit
}
