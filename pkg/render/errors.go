package render

import (
	"strings"

	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

// ErrorHeading titles the error summary.
const ErrorHeading = "Errors"

// ErrorSummary is the presentation of the current error list.
type ErrorSummary struct {
	Heading string
	Items   []string
}

// ErrorList builds the summary for errs, one item per error in order. It
// returns nil when there is nothing to show.
func ErrorList(errs []validation.Error) *ErrorSummary {
	if len(errs) == 0 {
		return nil
	}
	summary := &ErrorSummary{
		Heading: ErrorHeading,
		Items:   make([]string, 0, len(errs)),
	}
	for _, err := range errs {
		line := err.Stack
		if line == "" {
			line = err.Message
		}
		summary.Items = append(summary.Items, line)
	}
	return summary
}

// ErrorMapping groups messages by the dotted path of a rendered field.
// Messages whose path matches nothing end up in Form so none are lost.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// For returns the messages attached to path.
func (m ErrorMapping) For(path string) []string {
	if m.Fields == nil {
		return nil
	}
	return m.Fields[path]
}

// MergeFormErrors concatenates form-level messages, trimming blanks and
// dropping duplicates while keeping order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrors attaches validation errors and optional external feedback to the
// fields of view. Array item errors stay on the item when it is rendered and
// fall back to the array otherwise.
func MapErrors(view form.FormView, errs []validation.Error, external map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	known := make(map[string]struct{})
	view.Root.Walk(func(v fields.View) bool {
		known[v.Path] = struct{}{}
		return true
	})

	attach := func(rawPath string, messages []string) {
		messages = normalizeMessages(messages)
		if len(messages) == 0 {
			return
		}
		mapped, formLevel := mapErrorPath(rawPath, known)
		if formLevel {
			mapping.Form = append(mapping.Form, messages...)
			return
		}
		mapping.Fields[mapped] = append(mapping.Fields[mapped], messages...)
	}

	for _, err := range errs {
		path := err.Path
		if path == "" {
			path = err.Field
		}
		attach(path, []string{err.Message})
	}
	for rawPath, messages := range external {
		attach(rawPath, messages)
	}

	for path, messages := range mapping.Fields {
		mapping.Fields[path] = normalizeMessages(messages)
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// mapErrorPath resolves raw to the deepest known field path. The root field
// has the empty path, so anything matching only the root is form-level.
func mapErrorPath(raw string, known map[string]struct{}) (string, bool) {
	if isFormLevelKey(raw) {
		return "", true
	}
	segments := parsePathSegments(raw)
	if len(segments) == 0 {
		return "", true
	}

	best := longestMatchingPath(segments, known)
	if best == "" {
		return "", true
	}
	return best, false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "#")
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	var parts []string
	if strings.Contains(clean, "/") {
		parts = strings.Split(clean, "/")
	} else {
		parts = strings.Split(clean, ".")
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(segments []string, known map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
