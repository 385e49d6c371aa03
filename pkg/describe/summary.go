package describe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/speakeasy-api/openapi/jsonschema/oas3"
)

// Summary returns a compact one-line representation of a schema's shape,
// e.g. object{id,name,tags} or array[string]. It truncates collections to
// keep output small.
func Summary(s *oas3.Schema, maxDepth int) string {
	if s == nil {
		return "never"
	}
	typ := primaryType(s)
	if typ == "" {
		if len(s.AnyOf) > 0 {
			return anyOfSummary(s, maxDepth)
		}
		return "any"
	}

	switch typ {
	case "string":
		if s.Format != nil && *s.Format != "" {
			return "string(" + *s.Format + ")"
		}
		return "string"

	case "number", "integer", "boolean", "null":
		return typ

	case "object":
		props := previewPropertyKeys(s, 5)
		if props == "" {
			return "object"
		}
		return "object{" + props + "}"

	case "array":
		if s.Items != nil && s.Items.Left != nil {
			if maxDepth <= 0 {
				return "array[...]"
			}
			return "array[" + Summary(s.Items.Left, maxDepth-1) + "]"
		}
		return "array"

	default:
		return typ
	}
}

func anyOfSummary(s *oas3.Schema, maxDepth int) string {
	limit := min(3, len(s.AnyOf))
	branches := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		if s.AnyOf[i] != nil && s.AnyOf[i].Left != nil {
			branches = append(branches, Summary(s.AnyOf[i].Left, max(maxDepth-1, 0)))
		}
	}
	if len(s.AnyOf) > limit {
		return fmt.Sprintf("anyOf(%s,+%d)", strings.Join(branches, "|"), len(s.AnyOf)-limit)
	}
	return "anyOf(" + strings.Join(branches, "|") + ")"
}

func previewPropertyKeys(s *oas3.Schema, limit int) string {
	if s == nil || s.Properties == nil {
		return ""
	}
	keys := make([]string, 0)
	for k := range s.Properties.All() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) <= limit {
		return strings.Join(keys, ",")
	}
	return strings.Join(keys[:limit], ",") + fmt.Sprintf(",+%d", len(keys)-limit)
}
