package describe

import (
	"testing"

	"github.com/jauntql/jaunt"
)

func mustParse(t *testing.T, s string) *jaunt.Node {
	t.Helper()
	n, err := jaunt.ParseString(s)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func TestSchema_Scalars(t *testing.T) {
	doc := mustParse(t, `{"s": "hi", "i": 3, "f": 2.5, "b": true, "n": null}`)
	for field, want := range map[string]string{
		"s": "string",
		"i": "integer",
		"f": "number",
		"b": "boolean",
		"n": "null",
	} {
		s := Schema(doc.GetField(field))
		if got := primaryType(s); got != want {
			t.Errorf("%q type: got %q, want %q", field, got, want)
		}
	}
}

func TestSchema_DateTimeFormat(t *testing.T) {
	doc := mustParse(t, `{"created": "2024-03-01T12:30:45Z", "label": "hello"}`)

	s := Schema(doc.GetField("created"))
	if s.Format == nil || *s.Format != "date-time" {
		t.Error("RFC 3339 text did not get the date-time format")
	}
	if got := Schema(doc.GetField("label")).Format; got != nil {
		t.Errorf("plain text got format %q", *got)
	}
}

func TestSchema_Object(t *testing.T) {
	doc := mustParse(t, `{"id": 7, "name": "corner", "tags": ["a"]}`)
	s := Schema(doc)

	if got := primaryType(s); got != "object" {
		t.Fatalf("type: got %q, want object", got)
	}
	if s.Properties == nil {
		t.Fatal("no properties inferred")
	}
	for _, field := range []string{"id", "name", "tags"} {
		if _, ok := s.Properties.Get(field); !ok {
			t.Errorf("property %q missing", field)
		}
	}
	if len(s.Required) != 3 {
		t.Errorf("required: got %v", s.Required)
	}
}

func TestSchema_Arrays(t *testing.T) {
	doc := mustParse(t, `{"homogeneous": [1, 2, 3], "mixed": [1, "two", 3], "empty": []}`)

	homo := Schema(doc.GetField("homogeneous"))
	if homo.Items == nil || homo.Items.Left == nil {
		t.Fatal("homogeneous array has no items schema")
	}
	if got := primaryType(homo.Items.Left); got != "integer" {
		t.Errorf("items type: got %q, want integer", got)
	}

	mixed := Schema(doc.GetField("mixed"))
	if mixed.Items == nil || mixed.Items.Left == nil {
		t.Fatal("mixed array has no items schema")
	}
	if got := len(mixed.Items.Left.AnyOf); got != 2 {
		t.Errorf("mixed items anyOf branches: got %d, want 2", got)
	}

	empty := Schema(doc.GetField("empty"))
	if empty.Items != nil {
		t.Error("empty array has an items schema")
	}
}

func TestSchema_Absence(t *testing.T) {
	s := Schema(nil)
	if s == nil {
		t.Fatal("absence mapped to a nil schema")
	}
	if got := len(s.GetType()); got != 0 {
		t.Errorf("absence schema has types: %v", s.GetType())
	}
}

func TestSummary(t *testing.T) {
	doc := mustParse(t, `{"id": 7, "tags": ["a", "b"], "when": "2024-03-01T12:30:45Z"}`)

	tests := []struct {
		field string
		want  string
	}{
		{field: "id", want: "integer"},
		{field: "tags", want: "array[string]"},
		{field: "when", want: "string(date-time)"},
	}
	for _, tc := range tests {
		if got := Summary(Schema(doc.GetField(tc.field)), 3); got != tc.want {
			t.Errorf("%q summary: got %q, want %q", tc.field, got, tc.want)
		}
	}

	if got := Summary(Schema(doc), 3); got != "object{id,tags,when}" {
		t.Errorf("object summary: %q", got)
	}
	if got := Summary(nil, 3); got != "never" {
		t.Errorf("nil summary: %q", got)
	}

	mixed := mustParse(t, `[1, "two", null]`)
	if got := Summary(Schema(mixed), 3); got != "array[anyOf(integer|string|null)]" {
		t.Errorf("mixed summary: %q", got)
	}
}
