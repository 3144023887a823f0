package style

import (
	"fmt"
)

// Declaration is a partial property set: every slot is nullable, and an
// unset slot is distinct from an explicit default. Declarations are built
// once at schema-compile time and never mutated afterward.
type Declaration struct {
	X, Y *Size
	W, H *Size

	MinWidth, MinHeight *Size

	Background *Background

	BorderTop, BorderBottom, BorderLeft, BorderRight *Border

	RadiusTL, RadiusTR, RadiusBL, RadiusBR *CornerRadius

	MarginTop, MarginBottom, MarginLeft, MarginRight     *Size
	PaddingTop, PaddingBottom, PaddingLeft, PaddingRight *Size

	FontStyle  *FontStyle
	FontWeight *FontWeight
	FontSize   *Size
	LineHeight *Size
	FontFamily *string
	Color      *Color

	TextAlign    *TextAlign
	WhiteSpace   *WhiteSpace
	OverflowWrap *OverflowWrap
	TextOverflow *TextOverflow

	OverflowX, OverflowY *Overflow

	Gap           *Size
	ListDirection *Direction

	Display         *Display
	TriggerPhase    *TriggerPhase
	PropagateEvents *bool
}

// ParseDeclaration compiles a property-name keyed dictionary (numbers,
// strings, nested maps and two-element arrays, as produced by the config
// loading layer) into a Declaration. Unknown keys are ignored; malformed
// values are configuration errors.
func ParseDeclaration(props map[string]any) (*Declaration, error) {
	d := &Declaration{}

	for key, v := range props {
		var err error
		switch key {

		case "x":
			d.X, err = sizeSlot(v)
		case "y":
			d.Y, err = sizeSlot(v)

		case "width":
			d.W, err = sizeSlot(v)
		case "height":
			d.H, err = sizeSlot(v)
		case "minWidth":
			d.MinWidth, err = sizeSlot(v)
		case "minHeight":
			d.MinHeight, err = sizeSlot(v)

		case "background":
			d.Background, err = parseBackground(v)

		case "border":
			var b *Border
			if b, err = parseBorder(v); err == nil {
				d.BorderTop, d.BorderBottom, d.BorderLeft, d.BorderRight = b, b, b, b
			}
		case "borderVertical":
			var b *Border
			if b, err = parseBorder(v); err == nil {
				d.BorderTop, d.BorderBottom = b, b
			}
		case "borderHorizontal":
			var b *Border
			if b, err = parseBorder(v); err == nil {
				d.BorderLeft, d.BorderRight = b, b
			}
		case "borderTop":
			d.BorderTop, err = parseBorder(v)
		case "borderBottom":
			d.BorderBottom, err = parseBorder(v)
		case "borderLeft":
			d.BorderLeft, err = parseBorder(v)
		case "borderRight":
			d.BorderRight, err = parseBorder(v)

		case "borderRadius":
			var r *CornerRadius
			if r, err = parseCornerRadius(v); err == nil {
				d.RadiusTL, d.RadiusTR, d.RadiusBL, d.RadiusBR = r, r, r, r
			}
		case "borderRadiusTop":
			var r *CornerRadius
			if r, err = parseCornerRadius(v); err == nil {
				d.RadiusTL, d.RadiusTR = r, r
			}
		case "borderRadiusBottom":
			var r *CornerRadius
			if r, err = parseCornerRadius(v); err == nil {
				d.RadiusBL, d.RadiusBR = r, r
			}
		case "borderRadiusLeft":
			var r *CornerRadius
			if r, err = parseCornerRadius(v); err == nil {
				d.RadiusTL, d.RadiusBL = r, r
			}
		case "borderRadiusRight":
			var r *CornerRadius
			if r, err = parseCornerRadius(v); err == nil {
				d.RadiusTR, d.RadiusBR = r, r
			}
		case "borderRadiusTopLeft":
			d.RadiusTL, err = parseCornerRadius(v)
		case "borderRadiusTopRight":
			d.RadiusTR, err = parseCornerRadius(v)
		case "borderRadiusBottomLeft":
			d.RadiusBL, err = parseCornerRadius(v)
		case "borderRadiusBottomRight":
			d.RadiusBR, err = parseCornerRadius(v)

		case "margin":
			var s *Size
			if s, err = sizeSlot(v); err == nil {
				d.MarginTop, d.MarginBottom, d.MarginLeft, d.MarginRight = s, s, s, s
			}
		case "marginVertical":
			var s *Size
			if s, err = sizeSlot(v); err == nil {
				d.MarginTop, d.MarginBottom = s, s
			}
		case "marginHorizontal":
			var s *Size
			if s, err = sizeSlot(v); err == nil {
				d.MarginLeft, d.MarginRight = s, s
			}
		case "marginTop":
			d.MarginTop, err = sizeSlot(v)
		case "marginBottom":
			d.MarginBottom, err = sizeSlot(v)
		case "marginLeft":
			d.MarginLeft, err = sizeSlot(v)
		case "marginRight":
			d.MarginRight, err = sizeSlot(v)

		case "padding":
			var s *Size
			if s, err = sizeSlot(v); err == nil {
				d.PaddingTop, d.PaddingBottom, d.PaddingLeft, d.PaddingRight = s, s, s, s
			}
		case "paddingVertical":
			var s *Size
			if s, err = sizeSlot(v); err == nil {
				d.PaddingTop, d.PaddingBottom = s, s
			}
		case "paddingHorizontal":
			var s *Size
			if s, err = sizeSlot(v); err == nil {
				d.PaddingLeft, d.PaddingRight = s, s
			}
		case "paddingTop":
			d.PaddingTop, err = sizeSlot(v)
		case "paddingBottom":
			d.PaddingBottom, err = sizeSlot(v)
		case "paddingLeft":
			d.PaddingLeft, err = sizeSlot(v)
		case "paddingRight":
			d.PaddingRight, err = sizeSlot(v)

		case "font":
			err = parseFontDict(d, v)
		case "fontStyle":
			d.FontStyle, err = parseFontStyle(v)
		case "fontWeight":
			d.FontWeight, err = parseFontWeight(v)
		case "fontSize":
			d.FontSize, err = sizeSlot(v)
		case "lineHeight":
			d.LineHeight, err = lineHeightSlot(v)
		case "fontFamily":
			var s string
			if s, err = stringValue(v); err == nil {
				d.FontFamily = &s
			}
		case "color":
			var c Color
			var s string
			if s, err = stringValue(v); err == nil {
				if c, err = ParseColor(s); err == nil {
					d.Color = &c
				}
			}

		case "textAlign":
			d.TextAlign, err = parseTextAlign(v)
		case "whiteSpace":
			d.WhiteSpace, err = parseWhiteSpace(v)
		case "overflowWrap":
			d.OverflowWrap, err = parseOverflowWrap(v)
		case "textOverflow":
			d.TextOverflow, err = parseTextOverflow(v)

		case "overflow":
			var o *Overflow
			if o, err = parseOverflow(v); err == nil {
				d.OverflowX, d.OverflowY = o, o
			}
		case "overflowX":
			d.OverflowX, err = parseOverflow(v)
		case "overflowY":
			d.OverflowY, err = parseOverflow(v)

		case "gap":
			d.Gap, err = sizeSlot(v)
		case "listDirection":
			d.ListDirection, err = parseDirection(v)

		case "display":
			d.Display, err = parseDisplay(v)
		case "triggerPhase":
			d.TriggerPhase, err = parseTriggerPhase(v)
		case "propagateEvents":
			b, ok := v.(bool)
			if !ok {
				err = fmt.Errorf("propagateEvents: expected bool, got %T", v)
			} else {
				d.PropagateEvents = &b
			}
		}

		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
	}

	return d, nil
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// sizeSlot compiles a number or size-expression string into a nullable slot.
func sizeSlot(v any) (*Size, error) {
	if n, ok := numberValue(v); ok {
		if n < 0 {
			return nil, fmt.Errorf("negative size %v", n)
		}
		s := Px(n)
		return &s, nil
	}

	raw, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	s, err := ParseSize(raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// lineHeightSlot treats a bare number as a multiple of the font size.
func lineHeightSlot(v any) (*Size, error) {
	if n, ok := numberValue(v); ok {
		if n < 0 {
			return nil, fmt.Errorf("negative line height %v", n)
		}
		s := Pct(n * 100)
		return &s, nil
	}
	return sizeSlot(v)
}

// parseBackground accepts a bare color string or a {color, texture} dict.
func parseBackground(v any) (*Background, error) {
	if s, ok := v.(string); ok {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		return &Background{Color: c}, nil
	}

	dict, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected background color or dict, got %T", v)
	}

	bg := &Background{Color: Transparent}
	if raw, ok := dict["color"]; ok {
		s, err := stringValue(raw)
		if err != nil {
			return nil, err
		}
		if bg.Color, err = ParseColor(s); err != nil {
			return nil, err
		}
	}
	if raw, ok := dict["texture"]; ok {
		s, err := stringValue(raw)
		if err != nil {
			return nil, err
		}
		bg.Texture = s
	}
	return bg, nil
}

func parseBorder(v any) (*Border, error) {
	dict, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected border dict, got %T", v)
	}

	b := &Border{Width: Px(1), Color: Black}
	if raw, ok := dict["size"]; ok {
		s, err := sizeSlot(raw)
		if err != nil {
			return nil, err
		}
		b.Width = *s
	}
	if raw, ok := dict["color"]; ok {
		s, err := stringValue(raw)
		if err != nil {
			return nil, err
		}
		if b.Color, err = ParseColor(s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// parseCornerRadius accepts a single size (square corner pair) or a
// two-element [rx, ry] array.
func parseCornerRadius(v any) (*CornerRadius, error) {
	if arr, ok := v.([]any); ok {
		if len(arr) != 2 {
			return nil, fmt.Errorf("corner radius array must have 2 entries, has %d", len(arr))
		}
		rx, err := sizeSlot(arr[0])
		if err != nil {
			return nil, err
		}
		ry, err := sizeSlot(arr[1])
		if err != nil {
			return nil, err
		}
		return &CornerRadius{X: *rx, Y: *ry}, nil
	}

	s, err := sizeSlot(v)
	if err != nil {
		return nil, err
	}
	return &CornerRadius{X: *s, Y: *s}, nil
}

func parseFontDict(d *Declaration, v any) error {
	dict, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("expected font dict, got %T", v)
	}

	var err error
	if raw, ok := dict["style"]; ok {
		if d.FontStyle, err = parseFontStyle(raw); err != nil {
			return err
		}
	}
	if raw, ok := dict["weight"]; ok {
		if d.FontWeight, err = parseFontWeight(raw); err != nil {
			return err
		}
	}
	if raw, ok := dict["size"]; ok {
		if d.FontSize, err = sizeSlot(raw); err != nil {
			return err
		}
	}
	if raw, ok := dict["height"]; ok {
		if d.LineHeight, err = lineHeightSlot(raw); err != nil {
			return err
		}
	}
	if raw, ok := dict["family"]; ok {
		s, err := stringValue(raw)
		if err != nil {
			return err
		}
		d.FontFamily = &s
	}
	return nil
}

func parseFontStyle(v any) (*FontStyle, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var fs FontStyle
	switch s {
	case "normal":
		fs = FontStyleNormal
	case "italic":
		fs = FontStyleItalic
	default:
		return nil, fmt.Errorf("unknown font style %q", s)
	}
	return &fs, nil
}

func parseFontWeight(v any) (*FontWeight, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var fw FontWeight
	switch s {
	case "normal":
		fw = FontWeightNormal
	case "bold":
		fw = FontWeightBold
	default:
		return nil, fmt.Errorf("unknown font weight %q", s)
	}
	return &fw, nil
}

func parseTextAlign(v any) (*TextAlign, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var ta TextAlign
	switch s {
	case "left":
		ta = TextAlignLeft
	case "right":
		ta = TextAlignRight
	case "center":
		ta = TextAlignCenter
	case "justify":
		ta = TextAlignJustify
	default:
		return nil, fmt.Errorf("unknown text align %q", s)
	}
	return &ta, nil
}

func parseWhiteSpace(v any) (*WhiteSpace, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var ws WhiteSpace
	switch s {
	case "normal":
		ws = WhiteSpaceNormal
	case "nowrap":
		ws = WhiteSpaceNoWrap
	default:
		return nil, fmt.Errorf("unknown white space %q", s)
	}
	return &ws, nil
}

func parseOverflowWrap(v any) (*OverflowWrap, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var ow OverflowWrap
	switch s {
	case "normal":
		ow = OverflowWrapNormal
	case "breakWord":
		ow = OverflowWrapBreakWord
	default:
		return nil, fmt.Errorf("unknown overflow wrap %q", s)
	}
	return &ow, nil
}

func parseTextOverflow(v any) (*TextOverflow, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var to TextOverflow
	switch s {
	case "clip":
		to = TextOverflowClip
	case "ellipsis":
		to = TextOverflowEllipsis
	default:
		return nil, fmt.Errorf("unknown text overflow %q", s)
	}
	return &to, nil
}

func parseOverflow(v any) (*Overflow, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var o Overflow
	switch s {
	case "hidden", "clip":
		o = OverflowClip
	case "auto":
		o = OverflowAuto
	case "scroll":
		o = OverflowScroll
	default:
		return nil, fmt.Errorf("unknown overflow %q", s)
	}
	return &o, nil
}

func parseDirection(v any) (*Direction, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var dir Direction
	switch s {
	case "vertical":
		dir = DirectionVertical
	case "horizontal":
		dir = DirectionHorizontal
	default:
		return nil, fmt.Errorf("unknown list direction %q", s)
	}
	return &dir, nil
}

func parseDisplay(v any) (*Display, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var disp Display
	switch s {
	case "block":
		disp = DisplayBlock
	case "flex":
		disp = DisplayFlex
	default:
		return nil, fmt.Errorf("unknown display %q", s)
	}
	return &disp, nil
}

func parseTriggerPhase(v any) (*TriggerPhase, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	var tp TriggerPhase
	switch s {
	case "press":
		tp = TriggerPress
	case "release":
		tp = TriggerRelease
	default:
		return nil, fmt.Errorf("unknown trigger phase %q", s)
	}
	return &tp, nil
}
