package style

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadSheet compiles a YAML style sheet: a mapping from selector keys to
// property maps. Document order is rule priority order, so decoding goes
// through yaml.Node rather than a Go map.
func LoadSheet(r io.Reader) (*Set, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Compile(nil)
		}
		return nil, fmt.Errorf("style sheet: %w", err)
	}
	if len(doc.Content) == 0 {
		return Compile(nil)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style sheet: top level must be a mapping of selectors")
	}

	sources := make([]RuleSource, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value

		var props map[string]any
		if err := root.Content[i+1].Decode(&props); err != nil {
			return nil, fmt.Errorf("style rule %q: %w", key, err)
		}

		decl, err := ParseDeclaration(props)
		if err != nil {
			return nil, &CompileError{Key: key, Err: err}
		}
		sources = append(sources, RuleSource{Key: key, Decl: decl})
	}

	return Compile(sources)
}
