package render

import (
	"fmt"

	"github.com/fogleman/gg"
)

// TextMetrics measures text with the same font the renderer draws with, so
// layout wrapping and painted glyphs agree. The zero metrics (no font)
// approximate half an em per rune, which keeps headless layout usable.
type TextMetrics struct {
	fontPath string
	dc       *gg.Context
	size     float64
}

// NewTextMetrics creates metrics for a TTF font file. An empty path yields
// the approximating fallback.
func NewTextMetrics(fontPath string) (*TextMetrics, error) {
	m := &TextMetrics{fontPath: fontPath, dc: gg.NewContext(1, 1)}
	if fontPath != "" {
		if err := m.dc.LoadFontFace(fontPath, 16); err != nil {
			return nil, fmt.Errorf("load font %s: %w", fontPath, err)
		}
		m.size = 16
	}
	return m, nil
}

// TextWidth returns the advance width of s at the given font size.
func (m *TextMetrics) TextWidth(s string, fontSize float64) float64 {
	if m.fontPath == "" {
		return float64(len([]rune(s))) * fontSize / 2
	}
	if m.size != fontSize {
		if err := m.dc.LoadFontFace(m.fontPath, fontSize); err != nil {
			return float64(len([]rune(s))) * fontSize / 2
		}
		m.size = fontSize
	}
	w, _ := m.dc.MeasureString(s)
	return w
}
