// Package layout converts resolved styles into concrete pixel geometry.
//
// Measurement is strictly top-down: every percentage in a style resolves
// against the parent's already-computed content box, so a child's box is
// undefined until its parent has been measured. Sibling subtrees have no
// ordering dependency on each other.
package layout

import (
	"tessera/pkg/style"
)

// Radius is one corner's horizontal/vertical radius pair in pixels.
type Radius struct {
	X, Y float64
}

// MinFontSize is the smallest resolvable font size. Zero or negative font
// sizes break text metrics.
const MinFontSize = 8

// Box is a component's computed geometry for one render pass. X and Y are
// relative to the parent's content box. Width and Height span the border
// box: borders and padding sit inside them, margins outside.
type Box struct {
	X, Y          float64
	Width, Height float64

	MinWidth, MinHeight float64

	MarginTop, MarginBottom, MarginLeft, MarginRight     float64
	BorderTop, BorderBottom, BorderLeft, BorderRight     float64
	PaddingTop, PaddingBottom, PaddingLeft, PaddingRight float64

	RadiusTL, RadiusTR, RadiusBL, RadiusBR Radius

	FontSize   float64
	LineHeight float64

	// Inputs retained so Resize can re-validate against the same clamps.
	rs               *style.Resolved
	parentW, parentH float64
}
