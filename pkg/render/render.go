// Package render rasterizes a laid-out component tree with fogleman/gg.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"tessera/pkg/component"
	"tessera/pkg/layout"
	"tessera/pkg/style"
)

// Renderer paints one interface into an offscreen RGBA image.
type Renderer struct {
	dc       *gg.Context
	fontPath string
	fontSize float64
}

// NewRenderer creates a renderer with the given pixel dimensions.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{dc: gg.NewContext(width, height)}
}

// SetFont selects the TTF font file used for all text. Without a font, text
// nodes render their boxes but no glyphs.
func (r *Renderer) SetFont(path string) {
	r.fontPath = path
	r.fontSize = 0
}

// Image returns the backing image.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// SavePNG writes the current image to disk.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// Render clears the canvas and paints the tree in document order, children
// over their parent, later siblings over earlier ones.
func (r *Renderer) Render(ui *component.Interface) {
	r.dc.SetRGB(1, 1, 1)
	r.dc.Clear()
	r.drawNode(ui.Root(), 0, 0)
}

func (r *Renderer) drawNode(n *component.Node, ox, oy float64) {
	b := n.Box()
	rs := n.Resolved()
	if b == nil || rs == nil {
		return
	}

	x := ox + b.X + b.MarginLeft
	y := oy + b.Y + b.MarginTop

	if rs.Background.Color.A > 0 {
		r.setColor(rs.Background.Color)
		r.roundedPath(x, y, b)
		r.dc.Fill()
	}

	r.drawBorders(x, y, b, rs)
	if len(n.Lines()) > 0 {
		r.drawText(n, x, y)
	}

	scrollX, scrollY := n.Scroll()
	cx := x + b.ContentOffsetX() - scrollX
	cy := y + b.ContentOffsetY() - scrollY
	for _, c := range n.Children() {
		r.drawNode(c, cx, cy)
	}
}

// roundedPath traces the border box with per-corner elliptical radii. Radius
// pairs are already clamped by layout, so the path cannot self-intersect.
func (r *Renderer) roundedPath(x, y float64, b *layout.Box) {
	w, h := b.Width, b.Height
	tl, tr, bl, br := b.RadiusTL, b.RadiusTR, b.RadiusBL, b.RadiusBR

	r.dc.NewSubPath()
	r.dc.MoveTo(x+tl.X, y)
	r.dc.LineTo(x+w-tr.X, y)
	r.dc.QuadraticTo(x+w, y, x+w, y+tr.Y)
	r.dc.LineTo(x+w, y+h-br.Y)
	r.dc.QuadraticTo(x+w, y+h, x+w-br.X, y+h)
	r.dc.LineTo(x+bl.X, y+h)
	r.dc.QuadraticTo(x, y+h, x, y+h-bl.Y)
	r.dc.LineTo(x, y+tl.Y)
	r.dc.QuadraticTo(x, y, x+tl.X, y)
	r.dc.ClosePath()
}

// drawBorders strokes each side on the border-box edge. Strokes center on
// the edge, matching the half-in half-out border model layout assumes.
func (r *Renderer) drawBorders(x, y float64, b *layout.Box, rs *style.Resolved) {
	w, h := b.Width, b.Height
	r.side(x, y, x+w, y, b.BorderTop, rs.BorderTop.Color)
	r.side(x, y+h, x+w, y+h, b.BorderBottom, rs.BorderBottom.Color)
	r.side(x, y, x, y+h, b.BorderLeft, rs.BorderLeft.Color)
	r.side(x+w, y, x+w, y+h, b.BorderRight, rs.BorderRight.Color)
}

func (r *Renderer) side(x1, y1, x2, y2, width float64, c style.Color) {
	if width <= 0 || c.A == 0 {
		return
	}
	r.setColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *Renderer) drawText(n *component.Node, x, y float64) {
	b := n.Box()
	rs := n.Resolved()
	if !r.loadFace(b.FontSize) {
		return
	}
	r.setColor(rs.Color)

	cw := b.ContentWidth()
	left := x + b.ContentOffsetX()
	top := y + b.ContentOffsetY()

	for i, line := range n.Lines() {
		// Anchor vertically at the line box center.
		ly := top + (float64(i)+0.5)*b.LineHeight
		switch rs.TextAlign {
		case style.TextAlignRight:
			r.dc.DrawStringAnchored(line, left+cw, ly, 1, 0.5)
		case style.TextAlignCenter:
			r.dc.DrawStringAnchored(line, left+cw/2, ly, 0.5, 0.5)
		default:
			r.dc.DrawStringAnchored(line, left, ly, 0, 0.5)
		}
	}
}

func (r *Renderer) loadFace(size float64) bool {
	if r.fontPath == "" {
		return false
	}
	if r.fontSize == size {
		return true
	}
	if err := r.dc.LoadFontFace(r.fontPath, size); err != nil {
		return false
	}
	r.fontSize = size
	return true
}

func (r *Renderer) setColor(c style.Color) {
	r.dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}
