package render

import (
	"context"

	"github.com/goliatone/go-schemaform/pkg/form"
)

// Renderer turns a form view into bytes (HTML, terminal text, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view form.FormView, options RenderOptions) ([]byte, error)
}
