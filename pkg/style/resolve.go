package style

// Resolved is one fully-defaulted property bag, computed fresh per render
// pass per component and discarded afterward. Size-valued slots stay as
// expressions; the layout pass evaluates them against the parent content box.
type Resolved struct {
	X, Y Size
	W, H Size

	MinWidth, MinHeight Size

	Background Background

	BorderTop, BorderBottom, BorderLeft, BorderRight Border

	RadiusTL, RadiusTR, RadiusBL, RadiusBR CornerRadius

	MarginTop, MarginBottom, MarginLeft, MarginRight     Size
	PaddingTop, PaddingBottom, PaddingLeft, PaddingRight Size

	FontStyle  FontStyle
	FontWeight FontWeight
	FontSize   Size
	LineHeight Size
	FontFamily string
	Color      Color

	TextAlign    TextAlign
	WhiteSpace   WhiteSpace
	OverflowWrap OverflowWrap
	TextOverflow TextOverflow

	OverflowX, OverflowY Overflow

	Gap           Size
	ListDirection Direction

	Display      Display
	TriggerPhase TriggerPhase

	// PropagateEvents stays tri-state: nil defers to the component kind's
	// default propagation behavior.
	PropagateEvents *bool
}

// pick returns the first non-nil slot in priority order, or def.
func pick[T any](decls []*Declaration, get func(*Declaration) *T, def T) T {
	for _, d := range decls {
		if v := get(d); v != nil {
			return *v
		}
	}
	return def
}

// inherit is pick with the parent's resolved value interposed before the
// default: unset font-class properties flow down the tree.
func inherit[T any](decls []*Declaration, get func(*Declaration) *T, parent *Resolved, fromParent func(*Resolved) T, def T) T {
	if parent != nil {
		def = fromParent(parent)
	}
	return pick(decls, get, def)
}

// Resolve folds declarations into one resolved style. decls must be in
// priority order, highest first (the caller reverses declared order so that
// later rules override earlier ones). parent is the parent component's
// already-resolved style, or nil at the root; resolution is therefore
// top-down by construction.
func Resolve(decls []*Declaration, parent *Resolved) *Resolved {
	return &Resolved{
		// Geometry never consults the parent style: unset slots fall back
		// to fixed defaults.
		X: pick(decls, func(d *Declaration) *Size { return d.X }, SizeZero),
		Y: pick(decls, func(d *Declaration) *Size { return d.Y }, SizeZero),
		W: pick(decls, func(d *Declaration) *Size { return d.W }, SizeFull),
		H: pick(decls, func(d *Declaration) *Size { return d.H }, SizeAuto),

		MinWidth:  pick(decls, func(d *Declaration) *Size { return d.MinWidth }, SizeZero),
		MinHeight: pick(decls, func(d *Declaration) *Size { return d.MinHeight }, SizeZero),

		Background: pick(decls, func(d *Declaration) *Background { return d.Background }, Background{Color: Transparent}),

		BorderTop:    pick(decls, func(d *Declaration) *Border { return d.BorderTop }, Border{}),
		BorderBottom: pick(decls, func(d *Declaration) *Border { return d.BorderBottom }, Border{}),
		BorderLeft:   pick(decls, func(d *Declaration) *Border { return d.BorderLeft }, Border{}),
		BorderRight:  pick(decls, func(d *Declaration) *Border { return d.BorderRight }, Border{}),

		RadiusTL: pick(decls, func(d *Declaration) *CornerRadius { return d.RadiusTL }, CornerRadius{}),
		RadiusTR: pick(decls, func(d *Declaration) *CornerRadius { return d.RadiusTR }, CornerRadius{}),
		RadiusBL: pick(decls, func(d *Declaration) *CornerRadius { return d.RadiusBL }, CornerRadius{}),
		RadiusBR: pick(decls, func(d *Declaration) *CornerRadius { return d.RadiusBR }, CornerRadius{}),

		MarginTop:    pick(decls, func(d *Declaration) *Size { return d.MarginTop }, SizeZero),
		MarginBottom: pick(decls, func(d *Declaration) *Size { return d.MarginBottom }, SizeZero),
		MarginLeft:   pick(decls, func(d *Declaration) *Size { return d.MarginLeft }, SizeZero),
		MarginRight:  pick(decls, func(d *Declaration) *Size { return d.MarginRight }, SizeZero),

		PaddingTop:    pick(decls, func(d *Declaration) *Size { return d.PaddingTop }, SizeZero),
		PaddingBottom: pick(decls, func(d *Declaration) *Size { return d.PaddingBottom }, SizeZero),
		PaddingLeft:   pick(decls, func(d *Declaration) *Size { return d.PaddingLeft }, SizeZero),
		PaddingRight:  pick(decls, func(d *Declaration) *Size { return d.PaddingRight }, SizeZero),

		// Font-class properties inherit through the parent's resolved style.
		FontStyle: inherit(decls, func(d *Declaration) *FontStyle { return d.FontStyle }, parent,
			func(p *Resolved) FontStyle { return p.FontStyle }, FontStyleNormal),
		FontWeight: inherit(decls, func(d *Declaration) *FontWeight { return d.FontWeight }, parent,
			func(p *Resolved) FontWeight { return p.FontWeight }, FontWeightNormal),
		FontSize: inherit(decls, func(d *Declaration) *Size { return d.FontSize }, parent,
			func(p *Resolved) Size { return p.FontSize }, SizeFull),
		LineHeight: inherit(decls, func(d *Declaration) *Size { return d.LineHeight }, parent,
			func(p *Resolved) Size { return p.LineHeight }, Pct(120)),
		FontFamily: inherit(decls, func(d *Declaration) *string { return d.FontFamily }, parent,
			func(p *Resolved) string { return p.FontFamily }, ""),
		Color: inherit(decls, func(d *Declaration) *Color { return d.Color }, parent,
			func(p *Resolved) Color { return p.Color }, Black),

		TextAlign: inherit(decls, func(d *Declaration) *TextAlign { return d.TextAlign }, parent,
			func(p *Resolved) TextAlign { return p.TextAlign }, TextAlignLeft),
		WhiteSpace: inherit(decls, func(d *Declaration) *WhiteSpace { return d.WhiteSpace }, parent,
			func(p *Resolved) WhiteSpace { return p.WhiteSpace }, WhiteSpaceNormal),
		OverflowWrap: inherit(decls, func(d *Declaration) *OverflowWrap { return d.OverflowWrap }, parent,
			func(p *Resolved) OverflowWrap { return p.OverflowWrap }, OverflowWrapNormal),
		TextOverflow: inherit(decls, func(d *Declaration) *TextOverflow { return d.TextOverflow }, parent,
			func(p *Resolved) TextOverflow { return p.TextOverflow }, TextOverflowClip),
		Display: inherit(decls, func(d *Declaration) *Display { return d.Display }, parent,
			func(p *Resolved) Display { return p.Display }, DisplayBlock),

		OverflowX: pick(decls, func(d *Declaration) *Overflow { return d.OverflowX }, OverflowClip),
		OverflowY: pick(decls, func(d *Declaration) *Overflow { return d.OverflowY }, OverflowClip),

		Gap:           pick(decls, func(d *Declaration) *Size { return d.Gap }, SizeZero),
		ListDirection: pick(decls, func(d *Declaration) *Direction { return d.ListDirection }, DirectionVertical),

		TriggerPhase: pick(decls, func(d *Declaration) *TriggerPhase { return d.TriggerPhase }, TriggerRelease),

		PropagateEvents: pickPtr(decls, func(d *Declaration) *bool { return d.PropagateEvents }),
	}
}

// pickPtr keeps the nil-means-unset semantics for tri-state slots.
func pickPtr[T any](decls []*Declaration, get func(*Declaration) *T) *T {
	for _, d := range decls {
		if v := get(d); v != nil {
			return v
		}
	}
	return nil
}
