package layout

import (
	"tessera/pkg/style"
)

// Measure computes a component's geometry from its resolved style and the
// parent's content box. It is a total function: degenerate inputs (zero
// parents, overflowing pairs) produce a degenerate but valid box, never an
// error. Callers measure parents before children.
func Measure(rs *style.Resolved, parentW, parentH, parentFontSize float64) *Box {
	b := &Box{rs: rs, parentW: parentW, parentH: parentH}

	minW := rs.MinWidth.ResolveMin(parentW, 0)
	minH := rs.MinHeight.ResolveMin(parentH, 0)
	b.MinWidth, b.MinHeight = minW, minH

	b.compute(rs.W.ResolveMin(parentW, minW), rs.H.ResolveMin(parentH, minH))

	// Font metrics resolve once; Resize never touches them.
	b.FontSize = rs.FontSize.ResolveMin(parentFontSize, MinFontSize)
	b.LineHeight = rs.LineHeight.ResolveMin(b.FontSize, b.FontSize)

	return b
}

// Resize is the single allowed post-hoc mutation of a measured box: a
// component-type content step growing the box to fit its children. The new
// size passes through the same min floors and margin/radius/padding clamps
// as the initial measurement.
func (b *Box) Resize(width, height float64) {
	if width < b.MinWidth {
		width = b.MinWidth
	}
	if height < b.MinHeight {
		height = b.MinHeight
	}
	b.compute(width, height)
}

// compute fills in every clamped slot for the given border-box size.
func (b *Box) compute(width, height float64) {
	rs, parentW, parentH := b.rs, b.parentW, b.parentH

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.Width, b.Height = width, height

	// Margins resolve per side, then opposing pairs shrink proportionally
	// so margins plus content always fit the parent dimension. Neither
	// side is ever dropped to zero alone.
	b.MarginLeft, b.MarginRight = shrinkPair(
		rs.MarginLeft.ResolveMin(parentW, 0),
		rs.MarginRight.ResolveMin(parentW, 0),
		parentW-width)
	b.MarginTop, b.MarginBottom = shrinkPair(
		rs.MarginTop.ResolveMin(parentH, 0),
		rs.MarginBottom.ResolveMin(parentH, 0),
		parentH-height)

	// Position resolves against the parent content box, then shifts back
	// just enough to keep the whole margin box inside the parent.
	b.X = clampPosition(rs.X.ResolveMin(parentW, 0), b.OuterWidth(), parentW)
	b.Y = clampPosition(rs.Y.ResolveMin(parentH, 0), b.OuterHeight(), parentH)

	b.BorderLeft = rs.BorderLeft.Width.ResolveMin(parentW, 0)
	b.BorderRight = rs.BorderRight.Width.ResolveMin(parentW, 0)
	b.BorderTop = rs.BorderTop.Width.ResolveMin(parentH, 0)
	b.BorderBottom = rs.BorderBottom.Width.ResolveMin(parentH, 0)

	b.RadiusTL = resolveRadius(rs.RadiusTL, width, height)
	b.RadiusTR = resolveRadius(rs.RadiusTR, width, height)
	b.RadiusBL = resolveRadius(rs.RadiusBL, width, height)
	b.RadiusBR = resolveRadius(rs.RadiusBR, width, height)
	b.clampRadii()

	b.PaddingLeft, b.PaddingRight = shrinkPair(
		rs.PaddingLeft.ResolveMin(parentW, 0),
		rs.PaddingRight.ResolveMin(parentW, 0),
		width)
	b.PaddingTop, b.PaddingBottom = shrinkPair(
		rs.PaddingTop.ResolveMin(parentH, 0),
		rs.PaddingBottom.ResolveMin(parentH, 0),
		height)
}

// shrinkPair scales an opposing pair down by a common factor so its sum
// never exceeds the governing dimension. The ratio between the two values
// is preserved and the clamped sum lands exactly on the limit. A zero-sum
// pair needs no shrink and must not produce a 0/0 ratio.
func shrinkPair(a, c, limit float64) (float64, float64) {
	if limit < 0 {
		limit = 0
	}
	sum := a + c
	if sum <= limit || sum == 0 {
		return a, c
	}
	factor := limit / sum
	return a * factor, c * factor
}

func clampPosition(pos, outer, parent float64) float64 {
	if pos+outer > parent {
		pos = parent - outer
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

func resolveRadius(r style.CornerRadius, width, height float64) Radius {
	return Radius{
		X: r.X.ResolveMin(width, 0),
		Y: r.Y.ResolveMin(height, 0),
	}
}

// clampRadii scales each edge's radius pair down proportionally whenever it
// overflows the governing dimension, degrading overflow into a squashed
// pill instead of clipped or negative corners.
func (b *Box) clampRadii() {
	b.RadiusTL.X, b.RadiusTR.X = shrinkPair(b.RadiusTL.X, b.RadiusTR.X, b.Width)
	b.RadiusBL.X, b.RadiusBR.X = shrinkPair(b.RadiusBL.X, b.RadiusBR.X, b.Width)
	b.RadiusTL.Y, b.RadiusBL.Y = shrinkPair(b.RadiusTL.Y, b.RadiusBL.Y, b.Height)
	b.RadiusTR.Y, b.RadiusBR.Y = shrinkPair(b.RadiusTR.Y, b.RadiusBR.Y, b.Height)
}

// OuterWidth is the full margin-box width.
func (b *Box) OuterWidth() float64 {
	return b.MarginLeft + b.Width + b.MarginRight
}

// OuterHeight is the full margin-box height.
func (b *Box) OuterHeight() float64 {
	return b.MarginTop + b.Height + b.MarginBottom
}

// ContentWidth is the width available to children: the border box minus
// padding and half of the combined side borders (each side's border
// straddles the padding boundary when drawn).
func (b *Box) ContentWidth() float64 {
	w := b.Width - b.PaddingLeft - b.PaddingRight - (b.BorderLeft+b.BorderRight)/2
	if w < 0 {
		return 0
	}
	return w
}

// ContentHeight is the height available to children.
func (b *Box) ContentHeight() float64 {
	h := b.Height - b.PaddingTop - b.PaddingBottom - (b.BorderTop+b.BorderBottom)/2
	if h < 0 {
		return 0
	}
	return h
}

// ContentOffsetX is the X offset of the content box inside the border box.
func (b *Box) ContentOffsetX() float64 {
	return b.BorderLeft/2 + b.PaddingLeft
}

// ContentOffsetY is the Y offset of the content box inside the border box.
func (b *Box) ContentOffsetY() float64 {
	return b.BorderTop/2 + b.PaddingTop
}
