package jaunt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNode_Classification(t *testing.T) {
	doc, err := ParseString(`{"s": "hi", "i": 3, "f": 2.5, "b": false, "n": null, "a": [1], "o": {}, "e": ""}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		field                                                  string
		object, array, container, value, text, num, boolean, null bool
	}{
		{field: "s", value: true, text: true},
		{field: "i", value: true, num: true},
		{field: "f", value: true, num: true},
		{field: "b", value: true, boolean: true},
		{field: "n", value: true, null: true},
		{field: "a", array: true, container: true},
		{field: "o", object: true, container: true},
		{field: "e", value: true, text: true},
	}
	for _, tc := range tests {
		n := doc.GetField(tc.field)
		if n == nil {
			t.Fatalf("field %q absent", tc.field)
		}
		if got := n.IsObject(); got != tc.object {
			t.Errorf("%q IsObject: got %v", tc.field, got)
		}
		if got := n.IsArray(); got != tc.array {
			t.Errorf("%q IsArray: got %v", tc.field, got)
		}
		if got := n.IsContainer(); got != tc.container {
			t.Errorf("%q IsContainer: got %v", tc.field, got)
		}
		if got := n.IsValue(); got != tc.value {
			t.Errorf("%q IsValue: got %v", tc.field, got)
		}
		if got := n.IsTextual(); got != tc.text {
			t.Errorf("%q IsTextual: got %v", tc.field, got)
		}
		if got := n.IsNumber(); got != tc.num {
			t.Errorf("%q IsNumber: got %v", tc.field, got)
		}
		if got := n.IsBool(); got != tc.boolean {
			t.Errorf("%q IsBool: got %v", tc.field, got)
		}
		if got := n.IsNull(); got != tc.null {
			t.Errorf("%q IsNull: got %v", tc.field, got)
		}
	}

	if doc.GetField("i").IsInteger() != true {
		t.Error("integer field does not classify as integral")
	}
	if doc.GetField("f").IsInteger() {
		t.Error("float field classifies as integral")
	}
}

func TestNode_Emptiness(t *testing.T) {
	doc, _ := ParseString(`{"a": [], "o": {}, "e": "", "s": "x", "n": null, "full": [1]}`)
	for field, want := range map[string]bool{
		"a": true, "o": true, "e": true,
		"s": false, "n": false, "full": false,
	} {
		if got := doc.GetField(field).IsEmpty(); got != want {
			t.Errorf("%q IsEmpty: got %v, want %v", field, got, want)
		}
	}
}

func TestNode_Coercions(t *testing.T) {
	doc, _ := ParseString(`{"i": 42, "f": 2.9, "b": true, "s": "7", "w": "word", "n": null}`)

	if got := doc.GetField("i").AsText(); got != "42" {
		t.Errorf("int AsText: %q", got)
	}
	if got := doc.GetField("n").AsText(); got != "null" {
		t.Errorf("null AsText: %q", got)
	}
	if got := doc.GetField("f").AsInt(); got != 2 {
		t.Errorf("float AsInt: %d", got)
	}
	if got := doc.GetField("s").AsInt(); got != 7 {
		t.Errorf("text AsInt: %d", got)
	}
	if got := doc.GetField("b").AsFloat(); got != 1 {
		t.Errorf("bool AsFloat: %v", got)
	}
	if got := doc.GetField("w").AsFloat(); got != 0 {
		t.Errorf("word AsFloat: %v", got)
	}
	if !doc.GetField("i").AsBool() {
		t.Error("non-zero AsBool: false")
	}
	if doc.GetField("n").AsBool() {
		t.Error("null AsBool: true")
	}

	// Absence coerces to zero values across the board.
	var absent *Node
	if absent.AsText() != "" || absent.AsInt() != 0 || absent.AsFloat() != 0 || absent.AsBool() {
		t.Error("absent node does not coerce to zero values")
	}
}

func TestNode_ChildAccess(t *testing.T) {
	doc, _ := ParseString(`{"tags": ["a", "b", "c"], "count": 1}`)
	tags := doc.GetField("tags")

	if got := tags.Size(); got != 3 {
		t.Errorf("size: got %d, want 3", got)
	}
	if got := tags.Get(2).AsText(); got != "c" {
		t.Errorf("Get(2): %q", got)
	}
	if got := tags.Get(3); got != nil {
		t.Errorf("Get(3): got %v, want nil", got)
	}
	if got := tags.Get(-1); got != nil {
		t.Errorf("Get(-1): got %v, want nil", got)
	}
	if got := tags.GetField("x"); got != nil {
		t.Errorf("GetField on array: got %v, want nil", got)
	}
	if got := doc.GetField("count").Get(0); got != nil {
		t.Errorf("Get on scalar: got %v, want nil", got)
	}

	want := []string{"tags", "count"}
	if diff := cmp.Diff(want, doc.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_RoundTrip(t *testing.T) {
	in := map[string]any{
		"name":  "corner",
		"sizes": []any{1, 2, 3},
		"meta":  map[string]any{"active": true, "note": nil},
	}
	n, err := FromAny(in)
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if !n.IsObject() {
		t.Fatal("FromAny of a map is not an object")
	}
	if !n.GetField("meta").GetField("note").IsNull() {
		t.Error("nil value did not become a null node")
	}

	out, err := n.Interface()
	if err != nil {
		t.Fatalf("Interface: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("empty input did not fail")
	}
	if _, err := ParseString("   "); err == nil {
		t.Error("blank input did not fail")
	}
	if _, err := ParseString(`{"a": [1, 2`); err == nil {
		t.Error("truncated input did not fail")
	}
}

func TestParse_YAMLInput(t *testing.T) {
	doc, err := ParseString("store:\n  name: corner\n  open: true\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.GetField("store").GetField("name").AsText(); got != "corner" {
		t.Errorf("name: %q", got)
	}
	if !doc.GetField("store").GetField("open").IsBool() {
		t.Error("open does not classify as boolean")
	}
}
