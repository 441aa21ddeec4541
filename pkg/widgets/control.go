package widgets

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Built-in widget identifiers.
const (
	WidgetText     = "text"
	WidgetCheckbox = "checkbox"
	WidgetSelect   = "select"
)

// RequiredMarker is appended to the display label of required controls.
const RequiredMarker = "*"

// Option is one entry of a closed-choice control.
type Option struct {
	Label    string `json:"label"`
	Value    any    `json:"value"`
	Selected bool   `json:"selected,omitempty"`
}

// Control is the plain-data description of a primitive editing control.
// Renderers draw it; the engine never does.
type Control struct {
	Widget      string      `json:"widget"`
	InputType   string      `json:"inputType,omitempty"`
	SchemaType  schema.Type `json:"schemaType,omitempty"`
	Label       string      `json:"label,omitempty"`
	Required    bool        `json:"required,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Help        string      `json:"help,omitempty"`
	Value       any         `json:"value,omitempty"`
	Options     []Option    `json:"options,omitempty"`
}

// DisplayLabel returns the label with the required marker appended.
func (c Control) DisplayLabel() string {
	if c.Label == "" {
		return ""
	}
	if c.Required {
		return c.Label + RequiredMarker
	}
	return c.Label
}

// Text returns the display value as a string for text-like widgets.
func (c Control) Text() string {
	switch typed := c.Value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

// Checked reports the checkbox state.
func (c Control) Checked() bool {
	checked, _ := c.Value.(bool)
	return checked
}

// Constraints carries what a scalar adapter passes down to a widget.
type Constraints struct {
	Schema      *schema.Node
	Label       string
	Required    bool
	Placeholder string
}

// Builder turns the current value and constraints into a control.
type Builder func(value any, c Constraints) Control

// Text builds a free-text control. Values of the wrong runtime type are
// treated as absent and the schema default is shown instead.
func Text(value any, c Constraints) Control {
	control := baseControl(WidgetText, c)
	control.InputType = inputTypeFor(c.Schema)
	if accepted, ok := textValue(value, c.Schema); ok {
		control.Value = accepted
	} else if accepted, ok := textValue(defaultOf(c.Schema), c.Schema); ok {
		control.Value = accepted
	}
	return control
}

// Checkbox builds a boolean control with the same drift guard as Text.
func Checkbox(value any, c Constraints) Control {
	control := baseControl(WidgetCheckbox, c)
	control.InputType = "checkbox"
	control.Help = c.Placeholder
	control.Placeholder = ""
	if checked, ok := value.(bool); ok {
		control.Value = checked
	} else if checked, ok := defaultOf(c.Schema).(bool); ok {
		control.Value = checked
	} else {
		control.Value = false
	}
	return control
}

// Select builds a closed-choice control whose options follow the enum order.
func Select(value any, c Constraints) Control {
	control := baseControl(WidgetSelect, c)
	if c.Schema != nil {
		control.Help = c.Schema.Description
	}
	control.Placeholder = ""

	current, ok := choiceValue(value, c.Schema)
	if !ok {
		current, _ = choiceValue(defaultOf(c.Schema), c.Schema)
	}
	control.Value = current

	if c.Schema != nil {
		control.Options = make([]Option, 0, len(c.Schema.Enum))
		for _, candidate := range c.Schema.Enum {
			control.Options = append(control.Options, Option{
				Label:    fmt.Sprint(candidate),
				Value:    candidate,
				Selected: current != nil && fmt.Sprint(candidate) == fmt.Sprint(current),
			})
		}
	}
	return control
}

func baseControl(widget string, c Constraints) Control {
	control := Control{
		Widget:      widget,
		Label:       c.Label,
		Required:    c.Required,
		Placeholder: c.Placeholder,
	}
	if c.Schema != nil {
		control.SchemaType = c.Schema.Type
	}
	return control
}

func textValue(value any, node *schema.Node) (any, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case float64:
		if node != nil && node.Type == schema.TypeNumber {
			return typed, true
		}
	}
	return nil, false
}

func inputTypeFor(node *schema.Node) string {
	if node == nil {
		return "text"
	}
	switch node.Type {
	case schema.TypeNumber:
		return "number"
	case schema.TypeDateTime:
		return "datetime-local"
	default:
		return "text"
	}
}

func defaultOf(node *schema.Node) any {
	if node == nil {
		return nil
	}
	return node.Default
}

// choiceValue accepts value only when its runtime type matches the schema's
// primitive type. Untyped enums accept any scalar.
func choiceValue(value any, node *schema.Node) (any, bool) {
	var want schema.Type
	if node != nil {
		want = node.Type
	}
	switch value.(type) {
	case string:
		if want == "" || want == schema.TypeString || want == schema.TypeDateTime {
			return value, true
		}
	case float64:
		if want == "" || want == schema.TypeNumber {
			return value, true
		}
	case bool:
		if want == "" || want == schema.TypeBoolean {
			return value, true
		}
	}
	return nil, false
}
