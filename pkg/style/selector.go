package style

import (
	"fmt"
	"strings"
)

// compound is one qualifier group with no combinators, e.g. "button.primary:hover".
// Empty fields impose no constraint.
type compound struct {
	typ     string
	id      string
	classes []string
	states  []string
}

func isQualifier(c byte) bool {
	return c == '.' || c == '#' || c == ':'
}

// parseCompound compiles a compound selector. A leading "*" or a missing
// type token matches any component type. Empty qualifier tokens and
// duplicate id qualifiers are configuration errors.
func parseCompound(s string) (compound, error) {
	var c compound

	if s == "" {
		return c, fmt.Errorf("empty selector")
	}

	// Find the start of each qualifier token.
	var marks []int
	for i := 0; i < len(s); i++ {
		if isQualifier(s[i]) {
			marks = append(marks, i)
		}
	}

	end := len(s)
	if len(marks) > 0 {
		end = marks[0]
	}

	typ := s[:end]
	if typ != "*" {
		c.typ = typ
	}

	marks = append(marks, len(s))
	for i := 0; i+1 < len(marks); i++ {
		token := s[marks[i]:marks[i+1]]
		value := token[1:]
		if value == "" {
			return c, fmt.Errorf("selector %q: empty token after %q", s, string(token[0]))
		}

		switch token[0] {
		case '.':
			c.classes = append(c.classes, value)
		case '#':
			if c.id != "" {
				return c, fmt.Errorf("selector %q: more than one id qualifier", s)
			}
			c.id = value
		case ':':
			c.states = append(c.states, value)
		}
	}

	return c, nil
}

// matches reports whether every qualifier in the compound is satisfied by
// the component's current properties. A compound with no qualifiers matches
// every component.
func (c compound) matches(p ComponentProperties) bool {
	if p == nil {
		return false
	}

	if c.typ != "" && c.typ != p.ComponentType() {
		return false
	}

	if c.id != "" && c.id != p.ComponentID() {
		return false
	}

	for _, class := range c.classes {
		if !p.HasClass(class) {
			return false
		}
	}

	for _, state := range c.states {
		if !p.HasState(state) {
			return false
		}
	}

	return true
}

func (c compound) String() string {
	var b strings.Builder
	if c.typ == "" {
		b.WriteByte('*')
	} else {
		b.WriteString(c.typ)
	}
	if c.id != "" {
		b.WriteByte('#')
		b.WriteString(c.id)
	}
	for _, class := range c.classes {
		b.WriteByte('.')
		b.WriteString(class)
	}
	for _, state := range c.states {
		b.WriteByte(':')
		b.WriteString(state)
	}
	return b.String()
}
