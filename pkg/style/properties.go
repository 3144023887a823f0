package style

// ComponentProperties is the snapshot of a live component that selectors
// match against. Type and ID are fixed for the component's lifetime;
// classes and states may change between resolve passes (hover and active
// toggles arrive through the state set).
//
// The cascade only borrows a snapshot during matching and never retains it.
type ComponentProperties interface {
	ComponentType() string
	ComponentID() string
	HasClass(name string) bool
	HasState(name string) bool

	// Parent returns nil for the root component.
	Parent() ComponentProperties

	// PrecedingSiblings returns the earlier children of this component's
	// parent in declaration order. Empty for a root or first child.
	PrecedingSiblings() []ComponentProperties
}

// precedingSibling returns the immediately preceding sibling, or nil.
func precedingSibling(p ComponentProperties) ComponentProperties {
	sibs := p.PrecedingSiblings()
	if len(sibs) == 0 {
		return nil
	}
	return sibs[len(sibs)-1]
}
