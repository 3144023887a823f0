package layout

import (
	"math"
	"testing"

	"tessera/pkg/style"
)

func base() *style.Resolved {
	return style.Resolve(nil, nil)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMeasurePercentWidth(t *testing.T) {
	rs := base()
	rs.W = style.Pct(50)
	rs.H = style.Px(40)

	b := Measure(rs, 200, 100, 16)
	if b.Width != 100 {
		t.Errorf("50%% of 200 = %v, want 100", b.Width)
	}
	if b.Height != 40 {
		t.Errorf("height = %v, want 40", b.Height)
	}
}

func TestMeasureDefaultsFillParent(t *testing.T) {
	b := Measure(base(), 300, 200, 16)
	if b.Width != 300 {
		t.Errorf("default width fills parent, got %v", b.Width)
	}
	if b.Height != 200 {
		t.Errorf("auto height starts at parent, got %v", b.Height)
	}
}

func TestMeasureMinWidthFloors(t *testing.T) {
	rs := base()
	rs.W = style.Px(100)
	rs.MinWidth = style.Px(150)

	b := Measure(rs, 400, 400, 16)
	if b.Width != 150 {
		t.Errorf("minWidth floors width, got %v", b.Width)
	}
}

func TestMeasureFitContentStartsAtZero(t *testing.T) {
	rs := base()
	rs.W = style.SizeFitContent
	rs.H = style.SizeFitContent

	b := Measure(rs, 400, 400, 16)
	if b.Width != 0 || b.Height != 0 {
		t.Errorf("fitContent measures to zero before content sizing, got %vx%v", b.Width, b.Height)
	}
}

func TestMarginPairShrinksProportionally(t *testing.T) {
	rs := base()
	rs.W = style.Px(0)
	rs.MarginLeft = style.Pct(60)
	rs.MarginRight = style.Pct(60)

	b := Measure(rs, 100, 100, 16)
	if !near(b.MarginLeft, 50) || !near(b.MarginRight, 50) {
		t.Errorf("60%%+60%% in 100 clamps to 50/50, got %v/%v", b.MarginLeft, b.MarginRight)
	}
	if got := b.MarginLeft + b.Width + b.MarginRight; !near(got, 100) {
		t.Errorf("clamped sum lands exactly on parent, got %v", got)
	}
}

func TestMarginShrinkKeepsRatio(t *testing.T) {
	rs := base()
	rs.W = style.Px(40)
	rs.MarginLeft = style.Pct(30)
	rs.MarginRight = style.Pct(60)

	b := Measure(rs, 100, 100, 16)
	if !near(b.MarginLeft, 20) || !near(b.MarginRight, 40) {
		t.Errorf("30/60 over limit 60 shrinks to 20/40, got %v/%v", b.MarginLeft, b.MarginRight)
	}
}

func TestMarginsWithinLimitUntouched(t *testing.T) {
	rs := base()
	rs.W = style.Px(50)
	rs.MarginLeft = style.Px(10)
	rs.MarginRight = style.Px(20)

	b := Measure(rs, 100, 100, 16)
	if b.MarginLeft != 10 || b.MarginRight != 20 {
		t.Errorf("fitting margins must not change, got %v/%v", b.MarginLeft, b.MarginRight)
	}
}

func TestPaddingPairShrinksToWidth(t *testing.T) {
	rs := base()
	rs.W = style.Px(100)
	rs.PaddingLeft = style.Px(80)
	rs.PaddingRight = style.Px(40)

	b := Measure(rs, 200, 200, 16)
	if got := b.PaddingLeft + b.PaddingRight; !near(got, 100) {
		t.Errorf("padding sum clamps exactly to width, got %v", got)
	}
	if !near(b.PaddingLeft, 2*b.PaddingRight) {
		t.Errorf("ratio preserved, got %v/%v", b.PaddingLeft, b.PaddingRight)
	}
}

func TestRadiusPairShrinks(t *testing.T) {
	rs := base()
	rs.W = style.Px(100)
	rs.H = style.Px(30)
	rs.RadiusTL = style.CornerRadius{X: style.Px(60), Y: style.Px(20)}
	rs.RadiusTR = style.CornerRadius{X: style.Px(60), Y: style.Px(20)}

	b := Measure(rs, 400, 400, 16)
	if !near(b.RadiusTL.X, 50) || !near(b.RadiusTR.X, 50) {
		t.Errorf("top rx pair clamps to width, got %v/%v", b.RadiusTL.X, b.RadiusTR.X)
	}
	// Left edge ry pair: TL 20 + BL 0 fits in height 30.
	if b.RadiusTL.Y != 20 {
		t.Errorf("fitting ry untouched, got %v", b.RadiusTL.Y)
	}
}

func TestRadiusPercentAgainstOwnBox(t *testing.T) {
	rs := base()
	rs.W = style.Px(100)
	rs.H = style.Px(50)
	rs.RadiusBR = style.CornerRadius{X: style.Pct(10), Y: style.Pct(10)}

	b := Measure(rs, 400, 400, 16)
	if b.RadiusBR.X != 10 {
		t.Errorf("percent rx resolves against width, got %v", b.RadiusBR.X)
	}
	if b.RadiusBR.Y != 5 {
		t.Errorf("percent ry resolves against height, got %v", b.RadiusBR.Y)
	}
}

func TestZeroParentProducesNoNaN(t *testing.T) {
	rs := base()
	rs.MarginLeft = style.Pct(50)
	rs.MarginRight = style.Pct(50)
	rs.PaddingLeft = style.Pct(10)

	b := Measure(rs, 0, 0, 16)
	for name, v := range map[string]float64{
		"width":       b.Width,
		"marginLeft":  b.MarginLeft,
		"marginRight": b.MarginRight,
		"paddingLeft": b.PaddingLeft,
		"x":           b.X,
	} {
		if math.IsNaN(v) {
			t.Errorf("%s is NaN for a zero-size parent", name)
		}
	}
}

func TestPositionClampsIntoParent(t *testing.T) {
	rs := base()
	rs.W = style.Px(50)
	rs.H = style.Px(50)
	rs.X = style.Px(80)

	b := Measure(rs, 100, 100, 16)
	if b.X != 50 {
		t.Errorf("x shifts back to keep the box inside, got %v", b.X)
	}

	rs.W = style.Px(200)
	b = Measure(rs, 100, 100, 16)
	if b.X != 0 {
		t.Errorf("oversized boxes pin to the origin, got %v", b.X)
	}
}

func TestFontSizeFloor(t *testing.T) {
	rs := base()
	rs.FontSize = style.Px(4)

	b := Measure(rs, 100, 100, 16)
	if b.FontSize != MinFontSize {
		t.Errorf("font size floors at %v, got %v", float64(MinFontSize), b.FontSize)
	}
}

func TestLineHeightFloorsAtFontSize(t *testing.T) {
	rs := base()
	rs.FontSize = style.Px(20)
	rs.LineHeight = style.Pct(50)

	b := Measure(rs, 100, 100, 16)
	if b.LineHeight != 20 {
		t.Errorf("line height floors at font size, got %v", b.LineHeight)
	}
}

func TestFontSizePercentOfParentFont(t *testing.T) {
	rs := base()
	rs.FontSize = style.Pct(150)

	b := Measure(rs, 100, 100, 20)
	if b.FontSize != 30 {
		t.Errorf("150%% of parent font 20 = %v, want 30", b.FontSize)
	}
}

func TestResizeReclamps(t *testing.T) {
	rs := base()
	rs.W = style.Px(0)
	rs.H = style.Px(0)
	rs.MarginLeft = style.Px(30)
	rs.MarginRight = style.Px(30)
	rs.MinWidth = style.Px(20)

	b := Measure(rs, 100, 100, 16)
	if b.MarginLeft != 30 {
		t.Fatalf("margins fit before resize, got %v", b.MarginLeft)
	}

	b.Resize(60, 10)
	if b.Width != 60 {
		t.Errorf("resize sets width, got %v", b.Width)
	}
	if !near(b.MarginLeft, 20) || !near(b.MarginRight, 20) {
		t.Errorf("margins re-clamp after growth, got %v/%v", b.MarginLeft, b.MarginRight)
	}

	b.Resize(5, 5)
	if b.Width != 20 {
		t.Errorf("resize still honors minWidth, got %v", b.Width)
	}
}

func TestContentAccessors(t *testing.T) {
	rs := base()
	rs.W = style.Px(100)
	rs.H = style.Px(80)
	rs.PaddingLeft = style.Px(10)
	rs.PaddingRight = style.Px(10)
	rs.PaddingTop = style.Px(5)
	rs.BorderLeft = style.Border{Width: style.Px(4)}
	rs.BorderRight = style.Border{Width: style.Px(4)}
	rs.MarginLeft = style.Px(7)

	b := Measure(rs, 400, 400, 16)
	if got := b.ContentWidth(); got != 76 {
		t.Errorf("content width = 100-10-10-(4+4)/2 = 76, got %v", got)
	}
	if got := b.ContentOffsetX(); got != 12 {
		t.Errorf("content offset x = 4/2+10 = 12, got %v", got)
	}
	if got := b.ContentOffsetY(); got != 5 {
		t.Errorf("content offset y = 0/2+5 = 5, got %v", got)
	}
	if got := b.OuterWidth(); got != 107 {
		t.Errorf("outer width includes margins, got %v", got)
	}
}
