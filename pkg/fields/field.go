package fields

import (
	"fmt"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Notify is the upward change callback a parent hands to each child. It
// receives the child's complete updated value.
type Notify func(value any)

// Field is one mounted node of the field tree.
type Field interface {
	Kind() Kind
	Schema() *schema.Node
	Path() Path
	// Value returns a copy of the field's current value.
	Value() any
	// View describes the field for renderers.
	View() View
	// Handle routes ev to the field addressed by rel, relative to this one.
	Handle(rel Path, ev Event) error
}

// Mount builds the field tree for node, seeded with value. onChange fires
// with the root's full value after every committed edit.
func Mount(node *schema.Node, value any, onChange Notify, opts ...Option) Field {
	ctx := newMountContext(opts...)
	return mount(ctx, node, value, nil, false, onChange)
}

func mount(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field {
	if notify == nil {
		notify = func(any) {}
	}
	build, ok := constructors[Resolve(node)]
	if !ok {
		build = newUnsupportedField
	}
	return build(ctx, node, value, path, required, notify)
}

type base struct {
	ctx      *mountContext
	node     *schema.Node
	path     Path
	required bool
	notify   Notify
}

func (b *base) Schema() *schema.Node { return b.node }
func (b *base) Path() Path           { return b.path }

func (b *base) title() string {
	if b.node == nil {
		return ""
	}
	return b.node.Title
}

func (b *base) description() string {
	if b.node == nil {
		return ""
	}
	return b.node.Description
}

func (b *base) viewBase(kind Kind) View {
	return View{
		Kind:        kind,
		Path:        b.path.String(),
		Name:        lastSegment(b.path),
		Title:       b.title(),
		Description: b.description(),
		Required:    b.required,
		Class:       "field field-" + typeClass(b.node),
	}
}

func unsupportedEvent(path Path, ev Event) error {
	return fmt.Errorf("%w: %T at %q", ErrUnsupportedEvent, ev, path.String())
}

func lastSegment(path Path) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

func typeClass(node *schema.Node) string {
	if name := node.TypeName(); name != "" {
		return name
	}
	return "unknown"
}

func pathNotFound(path Path) error {
	return fmt.Errorf("%w: %q", ErrPathNotFound, path.String())
}
