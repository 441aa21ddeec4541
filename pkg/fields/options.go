package fields

import (
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/widgets"
)

// Option configures how a field tree is mounted.
type Option func(*mountContext)

type mountContext struct {
	widgets        *widgets.Registry
	defaultItem    func(*schema.Node) any
	isItemRequired func(*schema.Node) bool
}

func newMountContext(opts ...Option) *mountContext {
	ctx := &mountContext{
		widgets:        widgets.Default(),
		defaultItem:    DefaultItem,
		isItemRequired: IsItemRequired,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(ctx)
	}
	return ctx
}

// WithWidgets overrides the widget registry used by scalar fields.
func WithWidgets(registry *widgets.Registry) Option {
	return func(ctx *mountContext) {
		if registry != nil {
			ctx.widgets = registry
		}
	}
}

// WithDefaultItem replaces the value synthesized when an array item is added.
func WithDefaultItem(fn func(items *schema.Node) any) Option {
	return func(ctx *mountContext) {
		if fn != nil {
			ctx.defaultItem = fn
		}
	}
}

// WithItemRequired replaces the array item required-ness heuristic.
func WithItemRequired(fn func(items *schema.Node) bool) Option {
	return func(ctx *mountContext) {
		if fn != nil {
			ctx.isItemRequired = fn
		}
	}
}
