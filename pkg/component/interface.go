package component

import (
	"github.com/rs/zerolog"

	"tessera/pkg/layout"
	"tessera/pkg/style"
)

// DefaultFontSize seeds font resolution at the root, where no parent font
// exists for percentages to reference.
const DefaultFontSize = 16

// Interface owns one component tree: the per-frame layout pass and the
// pointer state machine. All methods must be called from a single goroutine.
type Interface struct {
	log     zerolog.Logger
	root    *Node
	styles  *style.Set
	metrics Metrics

	width, height float64

	// hovered is the dispatch chain under the pointer, deepest first.
	// pressed is the prefix of that chain captured on pointer down; nodes
	// the pointer leaves drop out and never re-enter it.
	hovered []*Node
	pressed []*Node
}

// NewInterface builds an interface around a root node. styles is the
// combined rule set, lowest-priority layer first (see style.Concat); metrics
// may be nil when no text measurement is available.
func NewInterface(root *Node, styles *style.Set, metrics Metrics, log zerolog.Logger) *Interface {
	if styles == nil {
		styles = style.Concat()
	}
	return &Interface{log: log, root: root, styles: styles, metrics: metrics}
}

// Root returns the root node.
func (ui *Interface) Root() *Node { return ui.root }

// Size returns the viewport dimensions of the latest layout pass.
func (ui *Interface) Size() (w, h float64) { return ui.width, ui.height }

// Layout runs one full frame pass over the tree: per node, resolve the style
// cascade, measure geometry, recurse, then apply content sizing and scroll
// clamping. Styles and geometry from the previous pass are discarded.
func (ui *Interface) Layout(width, height float64) {
	ui.width, ui.height = width, height
	ui.layoutNode(ui.root, nil, width, height, DefaultFontSize)
}

func (ui *Interface) layoutNode(n *Node, parent *style.Resolved, parentW, parentH, parentFont float64) {
	var decls []*style.Declaration
	if n.decl != nil {
		decls = append(decls, n.decl)
	}
	decls = ui.styles.Matching(props{n: n}, decls)

	n.resolved = style.Resolve(decls, parent)
	n.box = layout.Measure(n.resolved, parentW, parentH, parentFont)

	cw, ch := n.box.ContentWidth(), n.box.ContentHeight()
	for _, c := range n.children {
		ui.layoutNode(c, n.resolved, cw, ch, n.box.FontSize)
	}

	if n.kind == KindList {
		ui.flowList(n, cw, ch)
	}

	contentW, contentH := ui.contentExtent(n, cw)

	ui.fitContent(n, contentW, contentH)
	ui.clampScroll(n, contentW, contentH)
}

// flowList repositions a list's children sequentially along its direction,
// separated by the resolved gap. Styled positions on list children are
// overridden; the cross-axis position is kept.
func (ui *Interface) flowList(n *Node, cw, ch float64) {
	horizontal := n.resolved.ListDirection == style.DirectionHorizontal

	axis := ch
	if horizontal {
		axis = cw
	}
	gap := n.resolved.Gap.ResolveMin(axis, 0)

	cursor := 0.0
	for _, c := range n.children {
		if c.box == nil {
			continue
		}
		if horizontal {
			c.box.X = cursor
			cursor += c.box.OuterWidth() + gap
		} else {
			c.box.Y = cursor
			cursor += c.box.OuterHeight() + gap
		}
	}
}

// contentExtent computes the bounding extent of a node's content: child
// margin boxes for containers, wrapped text for textual kinds.
func (ui *Interface) contentExtent(n *Node, cw float64) (w, h float64) {
	for _, c := range n.children {
		if c.box == nil {
			continue
		}
		if x := c.box.X + c.box.OuterWidth(); x > w {
			w = x
		}
		if y := c.box.Y + c.box.OuterHeight(); y > h {
			h = y
		}
	}

	if n.kind.spec().textual {
		n.lines = wrapText(n.Text(), cw, n.box.FontSize, ui.metrics, n.resolved)
		for i, line := range n.lines {
			n.lines[i] = truncateLine(line, cw, n.box.FontSize, ui.metrics, n.resolved.TextOverflow)
		}
		if ui.metrics != nil {
			for _, line := range n.lines {
				if lw := ui.metrics.TextWidth(line, n.box.FontSize); lw > w {
					w = lw
				}
			}
		}
		if th := float64(len(n.lines)) * n.box.LineHeight; th > h {
			h = th
		}
	} else {
		n.lines = nil
	}

	n.contentW, n.contentH = w, h
	return w, h
}

// fitContent grows the node's box when its sizing keywords ask for it:
// fitContent sizes exactly to content, auto grows beyond the styled size
// only when content overflows. Children are measured before growth, so
// percentage-sized children of a fitContent parent resolve against the
// pre-growth (zero) content box.
func (ui *Interface) fitContent(n *Node, contentW, contentH float64) {
	rs, b := n.resolved, n.box
	if !rs.W.IsFitContent() && !rs.W.IsAuto() && !rs.H.IsFitContent() && !rs.H.IsAuto() {
		return
	}

	// Chrome (padding plus half borders) itself depends on the box size, so
	// growth runs a short fixpoint: grow, re-derive chrome, grow once more.
	for i := 0; i < 2; i++ {
		chromeW := b.Width - b.ContentWidth()
		chromeH := b.Height - b.ContentHeight()

		w, h := b.Width, b.Height
		if rs.W.IsFitContent() || (rs.W.IsAuto() && contentW+chromeW > w) {
			w = contentW + chromeW
		}
		if rs.H.IsFitContent() || (rs.H.IsAuto() && contentH+chromeH > h) {
			h = contentH + chromeH
		}

		if w == b.Width && h == b.Height {
			return
		}
		b.Resize(w, h)
	}
}

// clampScroll keeps scroll displacement inside the overflowing region, and
// zeroes it on axes that do not scroll.
func (ui *Interface) clampScroll(n *Node, contentW, contentH float64) {
	n.scrollX = clampScrollAxis(n.scrollX, contentW-n.box.ContentWidth(), n.resolved.OverflowX)
	n.scrollY = clampScrollAxis(n.scrollY, contentH-n.box.ContentHeight(), n.resolved.OverflowY)
}

func clampScrollAxis(cur, max float64, ov style.Overflow) float64 {
	if ov == style.OverflowClip || max < 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur > max {
		return max
	}
	return cur
}

// PointerMove updates hover state for the pointer position in viewport
// coordinates. Every node in the dispatch chain under the pointer is
// hovered; nodes that left the chain lose their hover, and pressed nodes
// that left lose their active state for good — an abandoned press does not
// come back on re-entry.
func (ui *Interface) PointerMove(x, y float64) {
	chain := ui.chainAt(x, y)

	for _, n := range ui.hovered {
		if !inChain(chain, n) {
			n.SetState("hover", false)
		}
	}
	for _, n := range chain {
		n.SetState("hover", true)
	}
	if len(chain) > 0 && !inChain(ui.hovered, chain[0]) {
		ui.log.Debug().Str("id", chain[0].id).Str("kind", chain[0].kind.String()).Msg("hover")
	}
	ui.hovered = chain

	ui.prunePressed(chain)
}

// PointerDown dispatches a press: every visited node gains the "active"
// state and press-phase triggers fire immediately. A node whose effective
// propagateEvents is off consumes the press, so no ancestor is pressed.
func (ui *Interface) PointerDown(x, y float64) {
	ui.pressed = ui.pressed[:0]
	ui.root.Propagate(x, y, func(n *Node, _, _ float64) bool {
		n.SetState("active", true)
		ui.pressed = append(ui.pressed, n)
		if n.resolved != nil && n.resolved.TriggerPhase == style.TriggerPress {
			ui.fire(n)
		}
		return !n.propagates()
	}, nil)
}

// PointerUp releases the press. Pressed nodes the pointer has left are
// discarded first; the rest lose their active state and fire release-phase
// triggers deepest first, stopping where the press stopped propagating.
func (ui *Interface) PointerUp(x, y float64) {
	ui.prunePressed(ui.chainAt(x, y))
	pressed := ui.pressed
	ui.pressed = nil

	for _, n := range pressed {
		n.SetState("active", false)
	}
	for _, n := range pressed {
		if n.resolved != nil && n.resolved.TriggerPhase == style.TriggerRelease {
			ui.fire(n)
		}
		if !n.propagates() {
			break
		}
	}
}

// prunePressed drops pressed nodes that are no longer under the pointer,
// clearing their active state on the way out.
func (ui *Interface) prunePressed(chain []*Node) {
	kept := ui.pressed[:0]
	for _, n := range ui.pressed {
		if inChain(chain, n) {
			kept = append(kept, n)
		} else {
			n.SetState("active", false)
		}
	}
	ui.pressed = kept
}

// Wheel dispatches scroll displacement. The deepest scrollable node under
// the pointer absorbs as much of the displacement as its overflow allows;
// any remainder climbs to enclosing scrollable ancestors.
func (ui *Interface) Wheel(x, y, dx, dy float64) {
	ui.root.Propagate(x, y, func(n *Node, _, _ float64) bool {
		dx = n.scrollBy(dx, true)
		dy = n.scrollBy(dy, false)
		return dx == 0 && dy == 0
	}, nil)
}

// scrollBy absorbs displacement along one axis and returns the remainder.
func (n *Node) scrollBy(d float64, horizontal bool) float64 {
	if d == 0 || n.box == nil || n.resolved == nil {
		return d
	}

	cur, max, ov := n.scrollY, n.contentH-n.box.ContentHeight(), n.resolved.OverflowY
	if horizontal {
		cur, max, ov = n.scrollX, n.contentW-n.box.ContentWidth(), n.resolved.OverflowX
	}
	if ov == style.OverflowClip || max <= 0 {
		return d
	}

	next := cur + d
	if next < 0 {
		next = 0
	}
	if next > max {
		next = max
	}

	if horizontal {
		n.scrollX = next
	} else {
		n.scrollY = next
	}
	return d - (next - cur)
}

func (ui *Interface) fire(n *Node) {
	ui.log.Debug().Str("id", n.id).Str("kind", n.kind.String()).Msg("trigger")
	if n.onTrigger != nil {
		n.onTrigger(n)
	}
}

// chainAt returns every node the pointer position dispatches through, from
// deepest hit to root.
func (ui *Interface) chainAt(x, y float64) []*Node {
	var trace []*Node
	ui.root.Propagate(x, y, func(*Node, float64, float64) bool { return false }, &trace)
	return trace
}

func inChain(chain []*Node, n *Node) bool {
	for _, have := range chain {
		if have == n {
			return true
		}
	}
	return false
}
