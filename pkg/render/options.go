package render

// RenderOptions carry per-request data that does not belong to the form
// session itself.
type RenderOptions struct {
	// Action and Method populate the form element. Method defaults to POST.
	Action string
	Method string
	// Hidden inputs emitted before the fields (CSRF tokens, versions).
	Hidden map[string]string
	// Errors merges server-side feedback keyed by field path (JSON pointer or
	// dotted) with the session's validation errors.
	Errors map[string][]string
	// Locale and Translator localise the fixed chrome strings.
	Locale     string
	Translator Translator
	// Theme selects a registered theme manifest and optional variant.
	Theme ThemeSelection
}

// ThemeSelection names a theme and variant known to the renderer.
type ThemeSelection struct {
	Name    string
	Variant string
}

// MethodOrDefault returns the HTTP method to emit.
func (o RenderOptions) MethodOrDefault() string {
	if o.Method == "" {
		return "post"
	}
	return o.Method
}
