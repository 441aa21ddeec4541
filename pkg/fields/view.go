package fields

import "github.com/goliatone/go-schemaform/pkg/widgets"

// View is the render-ready description of a mounted field. Renderers walk the
// tree of views; they never touch field state directly.
type View struct {
	Kind        Kind             `json:"kind"`
	Path        string           `json:"path"`
	Name        string           `json:"name,omitempty"`
	Index       *int             `json:"index,omitempty"`
	Title       string           `json:"title,omitempty"`
	Legend      string           `json:"legend,omitempty"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required,omitempty"`
	Class       string           `json:"class,omitempty"`
	Control     *widgets.Control `json:"control,omitempty"`
	Children    []View           `json:"children,omitempty"`
	Removable   bool             `json:"removable,omitempty"`
	CanAdd      bool             `json:"canAdd,omitempty"`
	ItemTitle   string           `json:"itemTitle,omitempty"`
	Diagnostic  string           `json:"diagnostic,omitempty"`
}

// IsItem reports whether the view is an array item.
func (v View) IsItem() bool {
	return v.Index != nil
}

// Walk visits v and all of its descendants depth first. Returning false from
// fn skips the children of the current view.
func (v View) Walk(fn func(View) bool) {
	if !fn(v) {
		return
	}
	for _, child := range v.Children {
		child.Walk(fn)
	}
}
