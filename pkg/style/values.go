package style

import (
	"fmt"
	"strconv"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{A: 255}
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" hex notation.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("bad color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("bad color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q", s)
	}

	c := Color{A: 255}
	if len(hex) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

// Border is one side's border style.
type Border struct {
	Width Size
	Color Color
}

// CornerRadius is one corner's horizontal and vertical radius pair.
type CornerRadius struct {
	X Size
	Y Size
}

// Background is a fill color plus an optional texture reference resolved by
// the rendering collaborator.
type Background struct {
	Color   Color
	Texture string
}

type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNoWrap
)

type OverflowWrap int

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapBreakWord
)

type TextOverflow int

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis
)

// Overflow selects the scroll behavior on one axis.
type Overflow int

const (
	OverflowClip Overflow = iota
	OverflowAuto
	OverflowScroll
)

// Direction orients list layout.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
)

// TriggerPhase selects whether a component's bound action fires on
// pointer-down or pointer-up.
type TriggerPhase int

const (
	TriggerRelease TriggerPhase = iota
	TriggerPress
)
