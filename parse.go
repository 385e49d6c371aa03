package jaunt

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML document into a node tree. JSON is a subset of
// YAML, so a single decoder covers both.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	n := wrap(&doc)
	if n == nil {
		return nil, fmt.Errorf("empty document")
	}
	return n, nil
}

// ParseString decodes a JSON or YAML document held in a string.
func ParseString(s string) (*Node, error) {
	return Parse([]byte(s))
}

// FromAny builds a node tree from a plain Go value (maps, slices, scalars),
// as produced by any JSON decoder.
func FromAny(v any) (*Node, error) {
	var yn yaml.Node
	if err := yn.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to build node: %w", err)
	}
	return wrap(&yn), nil
}

// Interface converts the node back into a plain Go value: map[string]any for
// objects, []any for arrays, scalars for the rest. Null decodes to nil.
func (n *Node) Interface() (any, error) {
	if n == nil {
		return nil, fmt.Errorf("absent node")
	}
	var v any
	if err := n.yn.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode node: %w", err)
	}
	return v, nil
}

// Scalar constructors, mainly useful for binding variables and in tests.

// Text returns a string node.
func Text(s string) *Node {
	return &Node{yn: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}}
}

// Int returns an integral number node.
func Int(i int64) *Node {
	return &Node{yn: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}}
}

// Float returns a number node.
func Float(f float64) *Node {
	return &Node{yn: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'g', -1, 64)}}
}

// Bool returns a boolean node.
func Bool(b bool) *Node {
	v := "false"
	if b {
		v = "true"
	}
	return &Node{yn: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}}
}

// Null returns a present JSON null node, distinct from an absent (nil) node.
func Null() *Node {
	return &Node{yn: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}}
}
