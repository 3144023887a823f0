package style

import (
	"fmt"
	"regexp"
	"strings"
)

// combinator relates a compound selector to the next one leftward in a chain.
type combinator int

const (
	descendant      combinator = iota // whitespace: any ancestor
	child                             // '>': exactly one level up
	adjacentSibling                   // '+': the immediately preceding sibling
	generalSibling                    // '~': any earlier sibling, nearest wins
)

// step is one leftward hop in a chain: how to move from the current
// component, and what the component found there must match.
type step struct {
	op  combinator
	sel compound
}

// chain is a full selector chain, stored right-to-left: subject matches the
// component being styled, steps walk outward through its relatives.
type chain struct {
	subject compound
	steps   []step
}

var (
	combinatorSpace = regexp.MustCompile(`\s*([>+~])\s*`)
	runsOfSpace     = regexp.MustCompile(`\s+`)
)

func isCombinator(c byte) bool {
	return c == ' ' || c == '>' || c == '+' || c == '~'
}

// parseChain compiles one selector chain (no comma alternatives).
func parseChain(s string) (chain, error) {
	// Normalize: strip space around explicit combinators, collapse the rest
	// to single descendant separators.
	s = strings.TrimSpace(s)
	s = combinatorSpace.ReplaceAllString(s, "$1")
	s = runsOfSpace.ReplaceAllString(s, " ")

	if s == "" {
		return chain{}, fmt.Errorf("empty selector chain")
	}

	var marks []int
	for i := 0; i < len(s); i++ {
		if isCombinator(s[i]) {
			marks = append(marks, i)
		}
	}

	start := 0
	if len(marks) > 0 {
		start = marks[len(marks)-1] + 1
	}

	subject, err := parseCompound(s[start:])
	if err != nil {
		return chain{}, err
	}

	ch := chain{subject: subject}

	// Walk the remaining compounds right-to-left, pairing each with the
	// combinator that sits to its right.
	for i := len(marks) - 1; i >= 0; i-- {
		prev := 0
		if i > 0 {
			prev = marks[i-1] + 1
		}

		var op combinator
		switch s[marks[i]] {
		case '>':
			op = child
		case '+':
			op = adjacentSibling
		case '~':
			op = generalSibling
		default:
			op = descendant
		}

		sel, err := parseCompound(s[prev:marks[i]])
		if err != nil {
			return chain{}, err
		}

		ch.steps = append(ch.steps, step{op: op, sel: sel})
	}

	return ch, nil
}

// matches evaluates the chain right-to-left from the subject component.
// A missing relative anywhere fails the chain closed; it never panics.
func (c chain) matches(p ComponentProperties) bool {
	if !c.subject.matches(p) {
		return false
	}
	return matchSteps(p, c.steps)
}

func matchSteps(p ComponentProperties, steps []step) bool {
	if len(steps) == 0 {
		return true
	}

	s := steps[0]
	rest := steps[1:]

	switch s.op {
	case child:
		q := p.Parent()
		return q != nil && s.sel.matches(q) && matchSteps(q, rest)

	case descendant:
		// The nearest matching ancestor anchors the rest of the chain.
		for q := p.Parent(); q != nil; q = q.Parent() {
			if s.sel.matches(q) {
				return matchSteps(q, rest)
			}
		}
		return false

	case adjacentSibling:
		q := precedingSibling(p)
		return q != nil && s.sel.matches(q) && matchSteps(q, rest)

	case generalSibling:
		// Nearest earlier sibling for which the whole remaining chain
		// resolves; non-matching siblings are skipped.
		sibs := p.PrecedingSiblings()
		for i := len(sibs) - 1; i >= 0; i-- {
			if s.sel.matches(sibs[i]) && matchSteps(sibs[i], rest) {
				return true
			}
		}
		return false
	}

	return false
}

// parseChains compiles a selector key: comma-separated alternative chains.
func parseChains(key string) ([]chain, error) {
	var chains []chain
	for _, option := range strings.Split(key, ",") {
		ch, err := parseChain(option)
		if err != nil {
			return nil, fmt.Errorf("selector key %q: %w", key, err)
		}
		chains = append(chains, ch)
	}
	return chains, nil
}
