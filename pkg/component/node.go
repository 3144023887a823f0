// Package component holds the runtime tree of an interface: nodes carrying
// identity, state and computed geometry, plus the event machinery that walks
// the tree. Styling stays in pkg/style and geometry math in pkg/layout; this
// package wires the two together per frame.
package component

import (
	"tessera/pkg/layout"
	"tessera/pkg/style"
)

// Value supplies a node's dynamic text. Implementations range from plain
// strings to script programs re-evaluated each frame.
type Value interface {
	String() string
	Bool() bool
}

// Metrics measures rendered text. The render collaborator provides the real
// implementation; tests substitute fixed-advance fakes.
type Metrics interface {
	// TextWidth returns the advance width of s at the given font size.
	TextWidth(s string, fontSize float64) float64
}

// TriggerFunc runs when a node's bound action fires.
type TriggerFunc func(n *Node)

// Node is one component in the tree. Nodes are not safe for concurrent
// mutation; the owning Interface serializes all access.
type Node struct {
	kind    Kind
	id      string
	classes []string
	states  map[string]bool

	parent   *Node
	children []*Node

	text  string
	value Value

	decl      *style.Declaration
	onTrigger TriggerFunc

	resolved *style.Resolved
	box      *layout.Box

	// lines is the wrapped text computed during layout, consumed by the
	// renderer.
	lines []string

	scrollX, scrollY   float64
	contentW, contentH float64
}

// New creates a detached node of the given kind.
func New(kind Kind, id string) *Node {
	return &Node{kind: kind, id: id, states: map[string]bool{}}
}

// Kind returns the node's component kind.
func (n *Node) Kind() Kind { return n.kind }

// ID returns the node's identifier, possibly empty.
func (n *Node) ID() string { return n.id }

// Parent returns the parent node, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child slice in declared order; the last child is
// topmost. The slice is shared, not copied.
func (n *Node) Children() []*Node { return n.children }

// Append adds children, detaching each from any previous parent.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches a direct child. Unknown nodes are ignored.
func (n *Node) Remove(c *Node) {
	for i, have := range n.children {
		if have == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// SetText sets static text content, clearing any dynamic value.
func (n *Node) SetText(s string) *Node {
	n.text = s
	n.value = nil
	return n
}

// SetValue binds dynamic text content, re-evaluated every layout pass.
func (n *Node) SetValue(v Value) *Node {
	n.value = v
	return n
}

// Text returns the node's current text: the bound value if present, else the
// static text.
func (n *Node) Text() string {
	if n.value != nil {
		return n.value.String()
	}
	return n.text
}

// Lines returns the wrapped text lines from the latest layout pass.
func (n *Node) Lines() []string { return n.lines }

// AddClass tags the node with a style class. Duplicates are ignored.
func (n *Node) AddClass(names ...string) *Node {
	for _, name := range names {
		if !n.hasClass(name) {
			n.classes = append(n.classes, name)
		}
	}
	return n
}

// RemoveClass drops a style class tag.
func (n *Node) RemoveClass(name string) {
	for i, have := range n.classes {
		if have == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

func (n *Node) hasClass(name string) bool {
	for _, have := range n.classes {
		if have == name {
			return true
		}
	}
	return false
}

// SetState toggles a selector-visible state flag such as "hover".
func (n *Node) SetState(name string, on bool) {
	if on {
		n.states[name] = true
	} else {
		delete(n.states, name)
	}
}

// HasState reports whether a state flag is set.
func (n *Node) HasState(name string) bool { return n.states[name] }

// SetStyle attaches an instance-level declaration, which outranks every
// matching rule from the style sets.
func (n *Node) SetStyle(d *style.Declaration) *Node {
	n.decl = d
	return n
}

// OnTrigger binds the node's action handler.
func (n *Node) OnTrigger(fn TriggerFunc) *Node {
	n.onTrigger = fn
	return n
}

// Resolved returns the node's style from the latest layout pass, nil before
// the first pass.
func (n *Node) Resolved() *style.Resolved { return n.resolved }

// Box returns the node's geometry from the latest layout pass, nil before
// the first pass.
func (n *Node) Box() *layout.Box { return n.box }

// Scroll returns the current scroll displacement.
func (n *Node) Scroll() (x, y float64) { return n.scrollX, n.scrollY }

// props adapts a node to the selector matcher. The adapter exists so that
// pkg/style never imports this package.
type props struct {
	n *Node
}

func (p props) ComponentType() string { return p.n.kind.String() }

func (p props) ComponentID() string { return p.n.id }

func (p props) HasClass(name string) bool { return p.n.hasClass(name) }

func (p props) HasState(name string) bool { return p.n.states[name] }

func (p props) Parent() style.ComponentProperties {
	if p.n.parent == nil {
		return nil
	}
	return props{n: p.n.parent}
}

func (p props) PrecedingSiblings() []style.ComponentProperties {
	if p.n.parent == nil {
		return nil
	}
	sibs := p.n.parent.children
	var out []style.ComponentProperties
	for _, s := range sibs {
		if s == p.n {
			break
		}
		out = append(out, props{n: s})
	}
	return out
}
