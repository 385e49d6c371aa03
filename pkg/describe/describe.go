// Package describe infers a JSON Schema for a parsed document. It is a
// shape-reporting aid for the traversal engine: given any node, it produces
// an oas3.Schema describing the value found there, suitable for feeding into
// schema-aware tooling.
package describe

import (
	"time"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/jauntql/jaunt"
)

// Schema infers a JSON Schema for the document under n. An absent node maps
// to the permissive empty schema, since nothing constrains a value that is
// not there.
func Schema(n *jaunt.Node) *oas3.Schema {
	switch {
	case n == nil:
		return &oas3.Schema{}
	case n.IsObject():
		return objectSchema(n)
	case n.IsArray():
		return arraySchema(n)
	case n.IsTextual():
		return stringSchema(n)
	case n.IsInteger():
		return typed(oas3.SchemaTypeInteger)
	case n.IsNumber():
		return typed(oas3.SchemaTypeNumber)
	case n.IsBool():
		return typed(oas3.SchemaTypeBoolean)
	case n.IsNull():
		return typed(oas3.SchemaTypeNull)
	default:
		return &oas3.Schema{}
	}
}

// typed creates a basic schema with only a type constraint.
func typed(t oas3.SchemaType) *oas3.Schema {
	return &oas3.Schema{
		Type: oas3.NewTypeFromString(t),
	}
}

// stringSchema creates a string schema, detecting the date-time format when
// the value parses as RFC 3339.
func stringSchema(n *jaunt.Node) *oas3.Schema {
	s := typed(oas3.SchemaTypeString)
	if _, err := time.Parse(time.RFC3339, n.AsText()); err == nil {
		format := "date-time"
		s.Format = &format
	}
	return s
}

// objectSchema builds an object schema with one property per field, all
// required, in document order.
func objectSchema(n *jaunt.Node) *oas3.Schema {
	props := sequencedmap.New[string, *oas3.JSONSchema[oas3.Referenceable]]()
	keys := n.Keys()
	for _, k := range keys {
		props.Set(k, oas3.NewJSONSchemaFromSchema[oas3.Referenceable](Schema(n.GetField(k))))
	}
	return &oas3.Schema{
		Type:       oas3.NewTypeFromString(oas3.SchemaTypeObject),
		Properties: props,
		Required:   keys,
	}
}

// arraySchema builds an array schema whose items cover every element shape
// seen. A homogeneous array gets a single items schema; mixed element types
// become an anyOf union, one branch per distinct type. An empty array keeps
// items unset.
func arraySchema(n *jaunt.Node) *oas3.Schema {
	s := typed(oas3.SchemaTypeArray)
	size := n.Size()
	if size == 0 {
		return s
	}

	var branches []*oas3.Schema
	seen := map[string]bool{}
	for i := 0; i < size; i++ {
		elem := Schema(n.Get(i))
		key := primaryType(elem)
		if seen[key] {
			continue
		}
		seen[key] = true
		branches = append(branches, elem)
	}

	if len(branches) == 1 {
		s.Items = oas3.NewJSONSchemaFromSchema[oas3.Referenceable](branches[0])
		return s
	}
	anyOf := make([]*oas3.JSONSchema[oas3.Referenceable], len(branches))
	for i, b := range branches {
		anyOf[i] = oas3.NewJSONSchemaFromSchema[oas3.Referenceable](b)
	}
	s.Items = oas3.NewJSONSchemaFromSchema[oas3.Referenceable](&oas3.Schema{AnyOf: anyOf})
	return s
}

// primaryType returns the single declared type of a schema, or "" when it has
// none or several.
func primaryType(s *oas3.Schema) string {
	if s == nil {
		return ""
	}
	types := s.GetType()
	if len(types) != 1 {
		return ""
	}
	return string(types[0])
}
