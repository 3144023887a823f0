package style

import (
	"testing"
)

func TestParseDeclarationShorthands(t *testing.T) {
	d, err := ParseDeclaration(map[string]any{
		"margin":       "4px",
		"paddingLeft":  10,
		"borderRadius": 6,
		"border":       map[string]any{"size": 2, "color": "#ff0000"},
		"background":   "#336699",
		"lineHeight":   1.5,
		"font":         map[string]any{"size": "24px", "weight": "bold"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for name, s := range map[string]*Size{
		"marginTop": d.MarginTop, "marginBottom": d.MarginBottom,
		"marginLeft": d.MarginLeft, "marginRight": d.MarginRight,
	} {
		if s == nil || s.Resolve(0) != 4 {
			t.Errorf("%s: margin shorthand should expand to 4px", name)
		}
	}

	if d.PaddingLeft == nil || d.PaddingLeft.Resolve(0) != 10 {
		t.Error("bare numbers are pixel sizes")
	}
	if d.PaddingRight != nil {
		t.Error("only paddingLeft was declared")
	}

	if d.RadiusBR == nil || d.RadiusBR.X.Resolve(0) != 6 || d.RadiusBR.Y.Resolve(0) != 6 {
		t.Error("borderRadius shorthand should expand to all four square corners")
	}

	if d.BorderLeft == nil || d.BorderLeft.Width.Resolve(0) != 2 {
		t.Error("border shorthand should expand to all sides")
	}
	if d.BorderTop.Color != (Color{R: 0xff, A: 0xff}) {
		t.Errorf("border color parsed wrong: %+v", d.BorderTop.Color)
	}

	if d.Background == nil || d.Background.Color != (Color{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
		t.Error("background accepts a bare color string")
	}

	if d.LineHeight == nil || d.LineHeight.Resolve(20) != 30 {
		t.Error("bare line height numbers are font-size multiples")
	}

	if d.FontSize == nil || d.FontSize.Resolve(0) != 24 {
		t.Error("font dict sets fontSize")
	}
	if d.FontWeight == nil || *d.FontWeight != FontWeightBold {
		t.Error("font dict sets fontWeight")
	}
}

func TestParseDeclarationCornerRadiusPair(t *testing.T) {
	d, err := ParseDeclaration(map[string]any{
		"borderRadiusTopLeft": []any{8, "50%"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.RadiusTL.X.Resolve(0) != 8 {
		t.Error("rx should be 8px")
	}
	if d.RadiusTL.Y.Resolve(40) != 20 {
		t.Error("ry should be 50%")
	}
	if d.RadiusTR != nil {
		t.Error("single-corner key must not touch other corners")
	}
}

func TestParseDeclarationRejectsBadValues(t *testing.T) {
	bad := []map[string]any{
		{"width": -5},
		{"width": "12em"},
		{"color": "red"},
		{"propagateEvents": "yes"},
		{"triggerPhase": "sometimes"},
	}
	for _, props := range bad {
		if _, err := ParseDeclaration(props); err == nil {
			t.Errorf("ParseDeclaration(%v) should fail", props)
		}
	}
}

func TestParseDeclarationIgnoresUnknownKeys(t *testing.T) {
	d, err := ParseDeclaration(map[string]any{"zIndex": 5})
	if err != nil {
		t.Fatalf("unknown keys are ignored: %v", err)
	}
	if d == nil {
		t.Fatal("want empty declaration")
	}
}
