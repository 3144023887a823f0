package component

// Kind enumerates the built-in component kinds. The kind name doubles as the
// selector type token, so it is lowercase on the wire.
type Kind int

const (
	KindPanel Kind = iota
	KindLabel
	KindButton
	KindList
	KindDropdown
	KindSubInterface
)

var kindNames = [...]string{
	KindPanel:        "panel",
	KindLabel:        "label",
	KindButton:       "button",
	KindList:         "list",
	KindDropdown:     "dropdown",
	KindSubInterface: "subinterface",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// kindSpec carries per-kind behavior the style system cannot express.
type kindSpec struct {
	// propagate is the default for nodes whose style leaves
	// propagateEvents unset: whether a press or trigger dispatched on
	// this node continues to its ancestors. Buttons consume; plain
	// containers and labels pass the event upward.
	propagate bool
	// textual kinds measure and wrap their text during layout.
	textual bool
}

var kindSpecs = [...]kindSpec{
	KindPanel:        {propagate: true},
	KindLabel:        {propagate: true, textual: true},
	KindButton:       {propagate: false, textual: true},
	KindList:         {propagate: true},
	KindDropdown:     {propagate: false, textual: true},
	KindSubInterface: {propagate: true},
}

func (k Kind) spec() kindSpec {
	if int(k) < len(kindSpecs) {
		return kindSpecs[k]
	}
	return kindSpec{}
}

// propagates reports whether a press or trigger dispatched on this node
// continues to its ancestors: the style's tri-state propagateEvents when
// set, otherwise the kind default. Children are always hit-tested first
// regardless; hover and scroll ignore the flag entirely.
func (n *Node) propagates() bool {
	if n.resolved != nil && n.resolved.PropagateEvents != nil {
		return *n.resolved.PropagateEvents
	}
	return n.kind.spec().propagate
}
