package fields

import "github.com/goliatone/go-schemaform/pkg/schema"

// ObjectField owns the mapping for an object subschema. Children are mounted
// once per declared property, in declaration order.
type ObjectField struct {
	base
	state    map[string]any
	names    []string
	children map[string]Field
}

func newObjectField(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field {
	field := &ObjectField{
		base: base{
			ctx:      ctx,
			node:     node,
			path:     path,
			required: required,
			notify:   notify,
		},
		state:    seedObject(node, value),
		children: make(map[string]Field, len(node.Properties)),
	}
	for _, prop := range node.Properties {
		name := prop.Name
		field.names = append(field.names, name)
		field.children[name] = mount(ctx, prop.Schema, field.state[name], path.Child(name), field.IsRequired(name), func(next any) {
			field.commit(name, next)
		})
	}
	return field
}

func seedObject(node *schema.Node, value any) map[string]any {
	if typed, ok := value.(map[string]any); ok {
		return cloneMap(typed)
	}
	if typed, ok := node.Default.(map[string]any); ok {
		return cloneMap(typed)
	}
	return map[string]any{}
}

func (f *ObjectField) Kind() Kind { return KindObject }

// Value returns a copy of the mapping, unknown keys included.
func (f *ObjectField) Value() any { return cloneMap(f.state) }

// IsRequired reports whether name is listed in the schema's required set.
func (f *ObjectField) IsRequired(name string) bool {
	return f.node.IsRequired(name)
}

// Child returns the mounted field for a declared property.
func (f *ObjectField) Child(name string) (Field, bool) {
	child, ok := f.children[name]
	return child, ok
}

func (f *ObjectField) View() View {
	view := f.viewBase(KindObject)
	view.Legend = f.title()
	if view.Legend == "" {
		view.Legend = "Object"
	}
	view.Children = make([]View, 0, len(f.names))
	for _, name := range f.names {
		view.Children = append(view.Children, f.children[name].View())
	}
	return view
}

func (f *ObjectField) Handle(rel Path, ev Event) error {
	if len(rel) == 0 {
		return unsupportedEvent(f.path, ev)
	}
	child, ok := f.children[rel[0]]
	if !ok {
		return pathNotFound(f.path.Child(rel[0]))
	}
	return child.Handle(rel[1:], ev)
}

// commit applies the child update first and only then notifies the parent,
// so the parent always observes the merged mapping.
func (f *ObjectField) commit(name string, value any) {
	f.state = applyProperty(f.state, name, value)
	f.notify(cloneMap(f.state))
}

func applyProperty(state map[string]any, name string, value any) map[string]any {
	next := make(map[string]any, len(state)+1)
	for key, existing := range state {
		next[key] = existing
	}
	next[name] = value
	return next
}
