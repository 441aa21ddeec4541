package widgets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

func TestSelect_OptionsFollowEnumOrder(t *testing.T) {
	node := schema.MustParse(`{"type":"string","enum":["a","b","c"]}`)

	control := Select(nil, Constraints{Schema: node})

	var labels []string
	for _, option := range control.Options {
		labels = append(labels, option.Label)
		if option.Selected {
			t.Fatalf("expected no selection without a value, got %q selected", option.Label)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, labels); diff != "" {
		t.Fatalf("option order mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_MarksCurrentValue(t *testing.T) {
	node := schema.MustParse(`{"type":"string","enum":["a","b"],"default":"b"}`)

	control := Select(nil, Constraints{Schema: node})
	if control.Value != "b" || !control.Options[1].Selected {
		t.Fatalf("expected default to be selected, got %+v", control)
	}

	control = Select("a", Constraints{Schema: node})
	if !control.Options[0].Selected || control.Options[1].Selected {
		t.Fatalf("expected a to be selected, got %+v", control.Options)
	}
}

func TestText_TypeDriftFallsBackToDefault(t *testing.T) {
	node := schema.MustParse(`{"type":"string","default":"fallback"}`)

	cases := []struct {
		name  string
		value any
		want  any
	}{
		{name: "string kept", value: "typed", want: "typed"},
		{name: "empty string kept", value: "", want: ""},
		{name: "number replaced", value: 12.0, want: "fallback"},
		{name: "map replaced", value: map[string]any{"a": 1}, want: "fallback"},
		{name: "nil replaced", value: nil, want: "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			control := Text(tc.value, Constraints{Schema: node})
			if control.Value != tc.want {
				t.Fatalf("got %#v, want %#v", control.Value, tc.want)
			}
		})
	}
}

func TestSelect_TypeDriftFallsBackToDefault(t *testing.T) {
	node := schema.MustParse(`{"type":"string","enum":["a","b","c"],"default":"b"}`)

	cases := []struct {
		name     string
		value    any
		want     any
		selected int
	}{
		{name: "matching string kept", value: "c", want: "c", selected: 2},
		{name: "bool replaced", value: true, want: "b", selected: 1},
		{name: "number replaced", value: 2.0, want: "b", selected: 1},
		{name: "slice replaced", value: []any{"a"}, want: "b", selected: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			control := Default().Build(node, tc.value, Constraints{Schema: node})
			if control.Widget != WidgetSelect {
				t.Fatalf("expected select widget, got %q", control.Widget)
			}
			if control.Value != tc.want {
				t.Fatalf("got %#v, want %#v", control.Value, tc.want)
			}
			for idx, option := range control.Options {
				if option.Selected != (idx == tc.selected) {
					t.Fatalf("option %d selected=%v, want selection at %d", idx, option.Selected, tc.selected)
				}
			}
		})
	}

	numbers := schema.MustParse(`{"type":"number","enum":[1,2]}`)
	if control := Select("2", Constraints{Schema: numbers}); control.Value != nil || control.Options[1].Selected {
		t.Fatalf("expected string value on number enum to be dropped, got %+v", control)
	}
	if control := Select(2.0, Constraints{Schema: numbers}); !control.Options[1].Selected {
		t.Fatalf("expected 2 to be selected, got %+v", control.Options)
	}
}

func TestText_NumberSchemaKeepsNumbers(t *testing.T) {
	node := schema.MustParse(`{"type":"number"}`)
	control := Text(2.5, Constraints{Schema: node})
	if control.Text() != "2.5" || control.InputType != "number" {
		t.Fatalf("unexpected control %+v", control)
	}
}

func TestCheckbox_Guard(t *testing.T) {
	node := schema.MustParse(`{"type":"boolean","default":true,"description":"Subscribe"}`)

	if control := Checkbox("yes", Constraints{Schema: node}); !control.Checked() {
		t.Fatalf("expected default to apply for non-bool value")
	}
	if control := Checkbox(false, Constraints{Schema: node}); control.Checked() {
		t.Fatalf("expected explicit false to be kept")
	}
	control := Checkbox(nil, Constraints{Schema: node, Placeholder: "Subscribe"})
	if control.Help != "Subscribe" || control.Placeholder != "" {
		t.Fatalf("expected description as help text, got %+v", control)
	}
}

func TestControl_DisplayLabel(t *testing.T) {
	if got := (Control{Label: "Name", Required: true}).DisplayLabel(); got != "Name*" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := (Control{Label: "Name"}).DisplayLabel(); got != "Name" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := (Control{Required: true}).DisplayLabel(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestDecode(t *testing.T) {
	numberNode := schema.MustParse(`{"type":"number"}`)
	enumNode := schema.MustParse(`{"type":"number","enum":[1,2]}`)

	if got := Decode(Control{Widget: WidgetText}, numberNode, "3.5"); got != 3.5 {
		t.Fatalf("expected parsed number, got %#v", got)
	}
	if got := Decode(Control{Widget: WidgetText}, numberNode, "abc"); got != "abc" {
		t.Fatalf("expected raw string, got %#v", got)
	}
	if got := Decode(Control{Widget: WidgetSelect}, enumNode, "2"); got != 2.0 {
		t.Fatalf("expected enum value, got %#v", got)
	}
	if got := Decode(Control{Widget: WidgetCheckbox}, nil, "on"); got != true {
		t.Fatalf("expected true, got %#v", got)
	}
}
