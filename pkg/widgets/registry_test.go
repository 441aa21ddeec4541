package widgets

import (
	"testing"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		node   *schema.Node
		expect string
	}{
		{name: "string text", node: schema.MustParse(`{"type":"string"}`), expect: WidgetText},
		{name: "number text", node: schema.MustParse(`{"type":"number"}`), expect: WidgetText},
		{name: "boolean checkbox", node: schema.MustParse(`{"type":"boolean"}`), expect: WidgetCheckbox},
		{name: "enum select", node: schema.MustParse(`{"type":"string","enum":["x"]}`), expect: WidgetSelect},
		{name: "boolean enum select", node: schema.MustParse(`{"type":"boolean","enum":[true,false]}`), expect: WidgetSelect},
		{name: "empty enum text", node: schema.MustParse(`{"type":"string","enum":[]}`), expect: WidgetText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.node)
			if !ok || got != tc.expect {
				t.Fatalf("expected %q, got %q (ok=%v)", tc.expect, got, ok)
			}
		})
	}
}

func TestResolve_ExplicitHintWins(t *testing.T) {
	reg := NewRegistry()
	node := schema.MustParse(`{"type":"string","enum":["a"],"x-widget":"text"}`)

	if got, _ := reg.Resolve(node); got != WidgetText {
		t.Fatalf("expected hint to win, got %q", got)
	}
}

func TestRegister_PriorityAndBuild(t *testing.T) {
	reg := NewRegistry()
	reg.Register("textarea", 95, func(node *schema.Node) bool {
		return node != nil && node.Format == "textarea"
	}, func(value any, c Constraints) Control {
		control := Text(value, c)
		control.Widget = "textarea"
		return control
	})

	node := schema.MustParse(`{"type":"string","format":"textarea"}`)
	control := reg.Build(node, "hello", Constraints{Label: "Body"})
	if control.Widget != "textarea" || control.Value != "hello" || control.Label != "Body" {
		t.Fatalf("unexpected control %+v", control)
	}
}

func TestRegistry_NilAndEmpty(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Resolve(schema.MustParse(`{"type":"string"}`)); ok {
		t.Fatalf("nil registry should not resolve")
	}
	control := reg.Build(nil, "x", Constraints{})
	if control.Widget != WidgetText {
		t.Fatalf("expected text fallback, got %q", control.Widget)
	}
}
