package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_PreservesPropertyOrder(t *testing.T) {
	node, err := Parse([]byte(`{
  "type": "object",
  "title": "Person",
  "required": ["name"],
  "properties": {
    "zeta": {"type": "string"},
    "name": {"type": "string", "minLength": 2},
    "alpha": {"type": "boolean", "default": true}
  }
}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if diff := cmp.Diff([]string{"zeta", "name", "alpha"}, node.PropertyNames()); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}
	if !node.IsRequired("name") || node.IsRequired("zeta") {
		t.Fatalf("unexpected required set: %v", node.Required)
	}
	name, ok := node.Property("name")
	if !ok || name.MinLength == nil || *name.MinLength != 2 {
		t.Fatalf("expected minLength 2 on name, got %+v", name)
	}
	alpha, _ := node.Property("alpha")
	if alpha.Default != true {
		t.Fatalf("expected default true, got %#v", alpha.Default)
	}
}

func TestParse_YAMLAndNumbers(t *testing.T) {
	node, err := Parse([]byte(`
type: array
items:
  type: number
  default: 3
  enum: [1, 2, 3]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if node.Type != TypeArray || node.Items == nil {
		t.Fatalf("expected array with items, got %+v", node)
	}
	if diff := cmp.Diff([]any{1.0, 2.0, 3.0}, node.Items.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if node.Items.Default != 3.0 {
		t.Fatalf("expected float64 default, got %#v", node.Items.Default)
	}
}

func TestParse_UnknownTypeIsAccepted(t *testing.T) {
	node, err := Parse([]byte(`{"type": "frobnicate", "x-extra": 1}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if node.Type != "frobnicate" {
		t.Fatalf("expected type to be kept, got %q", node.Type)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrEmptySchema) {
		t.Fatalf("expected ErrEmptySchema, got %v", err)
	}
	if _, err := Parse([]byte(`[1, 2]`)); err == nil {
		t.Fatalf("expected error for non-object root")
	}
	if _, err := Parse([]byte(`{"type": "object", "properties": []}`)); err == nil {
		t.Fatalf("expected error for malformed properties")
	}
}

func TestNode_MarshalJSONKeepsSourceOrder(t *testing.T) {
	node := MustParse(`{"type":"frobnicate","title":"Odd","properties":{"b":{"type":"string"},"a":{"type":"string"}}}`)

	want := `{"type":"frobnicate","title":"Odd","properties":{"b":{"type":"string"},"a":{"type":"string"}}}`
	if got := node.String(); got != want {
		t.Fatalf("unexpected serialization:\nwant %s\ngot  %s", want, got)
	}
}

func TestNode_MarshalJSONForCodeBuiltNodes(t *testing.T) {
	node := &Node{
		Type: TypeObject,
		Properties: []Property{
			{Name: "b", Schema: &Node{Type: TypeString}},
			{Name: "a", Schema: &Node{Type: TypeBoolean}},
		},
		Required: []string{"b"},
	}

	want := `{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"boolean"}},"required":["b"]}`
	if got := node.String(); got != want {
		t.Fatalf("unexpected serialization:\nwant %s\ngot  %s", want, got)
	}
}

func TestDocument_Node(t *testing.T) {
	doc := MustNewDocument(SourceFromFS("form.json"), []byte(`{"type":"string"}`))
	node, err := doc.Node()
	if err != nil {
		t.Fatalf("node: %v", err)
	}
	if node.Type != TypeString {
		t.Fatalf("expected string node, got %q", node.Type)
	}
	if doc.Location() != "form.json" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}
