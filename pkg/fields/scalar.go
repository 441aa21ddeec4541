package fields

import (
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/widgets"
)

// ScalarField adapts a string, number, date-time, or boolean subschema to a
// widget. It holds the value its parent passed down and reports edits up.
type ScalarField struct {
	base
	kind  Kind
	value any
}

func newStringField(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field {
	return newScalar(KindString, ctx, node, value, path, required, notify)
}

func newBooleanField(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field {
	return newScalar(KindBoolean, ctx, node, value, path, required, notify)
}

func newScalar(kind Kind, ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) *ScalarField {
	return &ScalarField{
		base: base{
			ctx:      ctx,
			node:     node,
			path:     path,
			required: required,
			notify:   notify,
		},
		kind:  kind,
		value: value,
	}
}

func (f *ScalarField) Kind() Kind { return f.kind }
func (f *ScalarField) Value() any { return f.value }

// Control builds the widget for the current value.
func (f *ScalarField) Control() widgets.Control {
	return f.ctx.widgets.Build(f.node, f.value, widgets.Constraints{
		Schema:      f.node,
		Label:       f.title(),
		Required:    f.required,
		Placeholder: f.description(),
	})
}

func (f *ScalarField) View() View {
	view := f.viewBase(f.kind)
	control := f.Control()
	view.Control = &control
	return view
}

func (f *ScalarField) Handle(rel Path, ev Event) error {
	if len(rel) > 0 {
		return pathNotFound(f.path.Child(rel[0]))
	}
	switch typed := ev.(type) {
	case Change:
		f.commit(typed.Value)
	case Input:
		f.commit(widgets.Decode(f.Control(), f.node, typed.Raw))
	default:
		return unsupportedEvent(f.path, ev)
	}
	return nil
}

func (f *ScalarField) commit(value any) {
	f.value = value
	f.notify(value)
}
