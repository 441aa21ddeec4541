package fields

import "github.com/goliatone/go-schemaform/pkg/schema"

// UnsupportedMessage prefixes the diagnostic shown for schemas no field kind
// can handle.
const UnsupportedMessage = "Unsupported field schema"

// UnsupportedField is the placeholder for unknown or missing types. It keeps
// whatever value it was given and rejects every event.
type UnsupportedField struct {
	base
	value any
}

func newUnsupportedField(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field {
	return &UnsupportedField{
		base: base{
			ctx:      ctx,
			node:     node,
			path:     path,
			required: required,
			notify:   notify,
		},
		value: value,
	}
}

func (f *UnsupportedField) Kind() Kind { return KindUnsupported }
func (f *UnsupportedField) Value() any { return cloneValue(f.value) }

// Diagnostic is the serialized subschema, so a developer can find it.
func (f *UnsupportedField) Diagnostic() string {
	return UnsupportedMessage + " " + f.node.String() + "."
}

func (f *UnsupportedField) View() View {
	view := f.viewBase(KindUnsupported)
	view.Class = "unsupported-field"
	view.Diagnostic = f.Diagnostic()
	return view
}

func (f *UnsupportedField) Handle(rel Path, ev Event) error {
	if len(rel) > 0 {
		return pathNotFound(f.path.Child(rel[0]))
	}
	return unsupportedEvent(f.path, ev)
}
