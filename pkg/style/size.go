package style

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeKind discriminates ordinary size expressions from the two layout
// keywords that cannot be evaluated against a parent dimension alone.
type sizeKind int

const (
	sizeExpr sizeKind = iota
	sizeAuto
	sizeFitContent
)

type sizeUnit int

const (
	unitPx sizeUnit = iota
	unitPct
)

// term is one signed component of a size expression. The magnitude is
// always non-negative; subtraction is carried by neg.
type term struct {
	neg  bool
	n    float64
	unit sizeUnit
}

// Size is a compiled size expression: a signed sum of pixel and percent
// terms, or the keywords auto / fitContent. The zero value is 0px.
type Size struct {
	kind  sizeKind
	terms []term
}

var (
	// SizeZero is a constant 0px size.
	SizeZero = Px(0)
	// SizeFull is a constant 100% size.
	SizeFull = Pct(100)
	// SizeAuto sizes to the parent, then grows to fit content.
	SizeAuto = Size{kind: sizeAuto}
	// SizeFitContent sizes purely from content.
	SizeFitContent = Size{kind: sizeFitContent}
)

// Px returns a fixed pixel size.
func Px(n float64) Size {
	return Size{terms: []term{{n: n, unit: unitPx}}}
}

// Pct returns a parent-relative percent size.
func Pct(n float64) Size {
	return Size{terms: []term{{n: n, unit: unitPct}}}
}

// IsAuto reports whether the size is the auto keyword.
func (s Size) IsAuto() bool { return s.kind == sizeAuto }

// IsFitContent reports whether the size is the fitContent keyword.
func (s Size) IsFitContent() bool { return s.kind == sizeFitContent }

// Resolve evaluates the expression against the parent dimension in pixels.
// auto resolves to the full parent dimension and fitContent to zero; both
// are grown afterward by the content-sizing pass.
func (s Size) Resolve(parent float64) float64 {
	switch s.kind {
	case sizeAuto:
		return parent
	case sizeFitContent:
		return 0
	}

	total := 0.0
	for _, t := range s.terms {
		v := t.n
		if t.unit == unitPct {
			v = parent * t.n / 100
		}
		if t.neg {
			total -= v
		} else {
			total += v
		}
	}
	return total
}

// ResolveMin evaluates the expression and floors the result at min.
func (s Size) ResolveMin(parent, min float64) float64 {
	v := s.Resolve(parent)
	if v < min {
		return min
	}
	return v
}

// ParseSize compiles a size value: a bare non-negative number (pixels), a
// string with an optional px/pct/% suffix, a signed arithmetic chain of such
// terms ("100%-20px"), or the keywords auto / fitContent. Malformed input is
// a configuration error.
func ParseSize(raw string) (Size, error) {
	full := strings.ReplaceAll(raw, " ", "")
	if full == "" {
		return Size{}, fmt.Errorf("empty size value")
	}

	switch full {
	case "auto":
		return SizeAuto, nil
	case "fitContent":
		return SizeFitContent, nil
	}

	if full[0] != '+' && full[0] != '-' {
		full = "+" + full
	}

	var s Size
	start := 0
	for i := 1; i <= len(full); i++ {
		if i < len(full) && full[i] != '+' && full[i] != '-' {
			continue
		}

		t, err := parseTerm(full[start:i])
		if err != nil {
			return Size{}, fmt.Errorf("size %q: %w", raw, err)
		}
		s.terms = append(s.terms, t)
		start = i
	}

	return s, nil
}

// parseTerm compiles one signed term, e.g. "+100%" or "-20px".
func parseTerm(part string) (term, error) {
	t := term{neg: part[0] == '-'}
	body := part[1:]

	// Split the numeric prefix from the suffix.
	end := 0
	for end < len(body) && (body[end] >= '0' && body[end] <= '9' || body[end] == '.') {
		end++
	}

	n, err := strconv.ParseFloat(body[:end], 64)
	if err != nil {
		return t, fmt.Errorf("bad numeric literal %q", body)
	}
	t.n = n

	switch body[end:] {
	case "", "px":
		t.unit = unitPx
	case "pct", "%":
		t.unit = unitPct
	default:
		return t, fmt.Errorf("unknown size suffix %q", body[end:])
	}

	return t, nil
}
