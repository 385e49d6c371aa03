// Package jaunt implements a small JSON document traversal engine built
// around a copy-on-write path trace. A document is parsed once into an
// immutable node tree; a Trace records the progressive nodes visited while
// resolving a path expression against that tree, together with the variables
// bound during the evaluation.
package jaunt

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is an immutable reference into a parsed document tree.
//
// A nil *Node means "absent": the result of looking up a missing field or an
// out-of-range index. Absence is distinct from a present JSON null, which is
// a non-nil node whose IsNull reports true. Every accessor on Node is safe to
// call on a nil receiver so lookups can be chained; absence simply propagates.
type Node struct {
	yn *yaml.Node
}

// wrap adapts a raw yaml node into a Node, resolving document wrappers and
// alias indirections so that Kind checks see the effective node.
func wrap(yn *yaml.Node) *Node {
	for yn != nil {
		switch yn.Kind {
		case yaml.DocumentNode:
			if len(yn.Content) == 0 {
				return nil
			}
			yn = yn.Content[0]
		case yaml.AliasNode:
			yn = yn.Alias
		case yaml.ScalarNode, yaml.MappingNode, yaml.SequenceNode:
			return &Node{yn: yn}
		default:
			// Zero Kind: no value was decoded.
			return nil
		}
	}
	return nil
}

// IsObject reports whether the node is a JSON object.
func (n *Node) IsObject() bool {
	return n != nil && n.yn.Kind == yaml.MappingNode
}

// IsArray reports whether the node is a JSON array.
func (n *Node) IsArray() bool {
	return n != nil && n.yn.Kind == yaml.SequenceNode
}

// IsContainer reports whether the node is an object or an array.
func (n *Node) IsContainer() bool {
	return n.IsObject() || n.IsArray()
}

// IsValue reports whether the node is a scalar (string, number, boolean or
// null).
func (n *Node) IsValue() bool {
	return n != nil && n.yn.Kind == yaml.ScalarNode
}

// IsTextual reports whether the node is a string.
func (n *Node) IsTextual() bool {
	return n != nil && n.yn.Kind == yaml.ScalarNode && n.yn.Tag == "!!str"
}

// IsNumber reports whether the node is a number, integral or not.
func (n *Node) IsNumber() bool {
	if n == nil || n.yn.Kind != yaml.ScalarNode {
		return false
	}
	return n.yn.Tag == "!!int" || n.yn.Tag == "!!float"
}

// IsInteger reports whether the node is an integral number.
func (n *Node) IsInteger() bool {
	return n != nil && n.yn.Kind == yaml.ScalarNode && n.yn.Tag == "!!int"
}

// IsBool reports whether the node is a boolean.
func (n *Node) IsBool() bool {
	return n != nil && n.yn.Kind == yaml.ScalarNode && n.yn.Tag == "!!bool"
}

// IsNull reports whether the node is a present JSON null. A nil *Node is
// absence, not null; IsNull is false for it.
func (n *Node) IsNull() bool {
	return n != nil && n.yn.Kind == yaml.ScalarNode && n.yn.Tag == "!!null"
}

// IsEmpty reports whether the node is a container with no children or an
// empty string. All other nodes, including null, report false.
func (n *Node) IsEmpty() bool {
	if n == nil {
		return false
	}
	switch n.yn.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(n.yn.Content) == 0
	case yaml.ScalarNode:
		return n.yn.Tag == "!!str" && n.yn.Value == ""
	}
	return false
}

// AsText returns the scalar value as text. Null renders as "null" and
// containers as the empty string.
func (n *Node) AsText() string {
	if n == nil {
		return ""
	}
	switch {
	case n.IsNull():
		return "null"
	case n.yn.Kind == yaml.ScalarNode:
		return n.yn.Value
	}
	return ""
}

// AsFloat coerces the scalar value to a float64. Booleans coerce to 0 or 1,
// parseable text to its numeric value, everything else to 0.
func (n *Node) AsFloat() float64 {
	if n == nil || n.yn.Kind != yaml.ScalarNode {
		return 0
	}
	if n.yn.Tag == "!!bool" {
		if n.boolValue() {
			return 1
		}
		return 0
	}
	f, err := strconv.ParseFloat(n.yn.Value, 64)
	if err != nil {
		return 0
	}
	return f
}

// AsInt coerces the scalar value to an int, truncating fractional parts.
func (n *Node) AsInt() int {
	if n == nil || n.yn.Kind != yaml.ScalarNode {
		return 0
	}
	if n.yn.Tag == "!!bool" {
		if n.boolValue() {
			return 1
		}
		return 0
	}
	if i, err := strconv.ParseInt(n.yn.Value, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(n.yn.Value, 64); err == nil {
		return int(f)
	}
	return 0
}

// AsBool coerces the scalar value to a boolean. The text "true" and any
// non-zero number coerce to true, everything else to false.
func (n *Node) AsBool() bool {
	if n == nil || n.yn.Kind != yaml.ScalarNode {
		return false
	}
	switch n.yn.Tag {
	case "!!bool":
		return n.boolValue()
	case "!!int", "!!float":
		return n.AsFloat() != 0
	}
	return strings.EqualFold(n.yn.Value, "true")
}

func (n *Node) boolValue() bool {
	return strings.EqualFold(n.yn.Value, "true")
}

// Size returns the number of children of a container node, 0 for scalars and
// absence.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	switch n.yn.Kind {
	case yaml.SequenceNode:
		return len(n.yn.Content)
	case yaml.MappingNode:
		return len(n.yn.Content) / 2
	}
	return 0
}

// Get returns the i-th element of an array node, or nil when the node is not
// an array or i is out of range.
func (n *Node) Get(i int) *Node {
	if n == nil || n.yn.Kind != yaml.SequenceNode {
		return nil
	}
	if i < 0 || i >= len(n.yn.Content) {
		return nil
	}
	return wrap(n.yn.Content[i])
}

// GetField returns the named field of an object node, or nil when the node is
// not an object or the field is not present. A field holding JSON null is
// present: the result is a non-nil null node.
func (n *Node) GetField(name string) *Node {
	if n == nil || n.yn.Kind != yaml.MappingNode {
		return nil
	}
	content := n.yn.Content
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == name {
			return wrap(content[i+1])
		}
	}
	return nil
}

// Keys returns the field names of an object node in document order, or nil
// for any other node.
func (n *Node) Keys() []string {
	if n == nil || n.yn.Kind != yaml.MappingNode {
		return nil
	}
	content := n.yn.Content
	keys := make([]string, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		keys = append(keys, content[i].Value)
	}
	return keys
}
