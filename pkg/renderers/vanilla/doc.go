// Package vanilla renders a form view to plain HTML with no client runtime.
//
// Each field kind has its own template (field, object, array, unsupported);
// the renderer walks the view tree in Go and hands pre-rendered children to
// the parent template. Schema descriptions pass through a bluemonday policy
// before they are emitted unescaped. A go-theme selection contributes CSS
// custom properties on the form element.
package vanilla
