package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Properties is an open-ended mapping from string keys to scalar or
// list-of-scalar values. There is no fixed schema beyond that shape; nested
// mappings are rejected at load time so downstream projections never have to
// branch on value depth.
type Properties map[string]any

// UnmarshalYAML enforces the scalar-or-list-of-scalar shape while decoding.
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a mapping, got %s", nodeKind(value))
	}

	out := make(Properties, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("property key: %w", err)
		}

		v, err := decodePropertyValue(value.Content[i+1])
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		out[key] = v
	}

	*p = out
	return nil
}

func decodePropertyValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("list values must be scalars, got %s", nodeKind(item))
			}
			var v any
			if err := item.Decode(&v); err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	}
	return nil, fmt.Errorf("values must be scalars or lists of scalars, got %s", nodeKind(n))
}
