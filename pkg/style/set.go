package style

import (
	"fmt"
)

// RuleSource is one declared style rule before compilation: a selector key
// (comma-separated alternative chains) and its declaration.
type RuleSource struct {
	Key  string
	Decl *Declaration
}

type rule struct {
	key    string
	chains []chain
	decl   *Declaration
}

// Set is an ordered list of compiled style rules. Order encodes priority:
// later rules win ties. A Set is immutable after compilation and safe to
// share across any number of components resolving at once.
type Set struct {
	rules []rule
}

// CompileError is a rejected style configuration. Compilation is
// all-or-nothing: one bad selector rejects the whole set.
type CompileError struct {
	Key string
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("style rule %q: %v", e.Key, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile builds a Set from declared rules, preserving declaration order.
func Compile(sources []RuleSource) (*Set, error) {
	s := &Set{rules: make([]rule, 0, len(sources))}

	for _, src := range sources {
		chains, err := parseChains(src.Key)
		if err != nil {
			return nil, &CompileError{Key: src.Key, Err: err}
		}

		decl := src.Decl
		if decl == nil {
			decl = &Declaration{}
		}

		s.rules = append(s.rules, rule{key: src.Key, chains: chains, decl: decl})
	}

	return s, nil
}

// Concat layers style sets: pack styles, then file styles, then instance
// styles — the concatenation order is itself the priority order, so a
// single resolve pass over the combined list suffices.
func Concat(sets ...*Set) *Set {
	out := &Set{}
	for _, s := range sets {
		if s != nil {
			out.rules = append(out.rules, s.rules...)
		}
	}
	return out
}

// Len returns the number of compiled rules.
func (s *Set) Len() int { return len(s.rules) }

// Matching appends the declarations of every rule matching the component to
// dst, in reverse declared order (last-declared first) so that the resolve
// fold's first-match-wins yields later-rules-override semantics. A rule
// matches if any of its alternative chains matches.
func (s *Set) Matching(p ComponentProperties, dst []*Declaration) []*Declaration {
	for i := len(s.rules) - 1; i >= 0; i-- {
		r := s.rules[i]
		for _, ch := range r.chains {
			if ch.matches(p) {
				dst = append(dst, r.decl)
				break
			}
		}
	}
	return dst
}
