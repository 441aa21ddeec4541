package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted ahead of the schema fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden builds a HiddenField, formatting value with fmt.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken carries a token under the caller's input name.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// HiddenFields flattens opts.Hidden plus extras into a name-sorted list.
// Blank names are dropped and extras win on collisions.
func HiddenFields(base map[string]string, extras ...HiddenField) []HiddenField {
	merged := make(map[string]string, len(base)+len(extras))
	for name, value := range base {
		if name = strings.TrimSpace(name); name != "" {
			merged[name] = value
		}
	}
	for _, field := range extras {
		if field.Name != "" {
			merged[field.Name] = field.Value
		}
	}
	if len(merged) == 0 {
		return nil
	}

	out := make([]HiddenField, 0, len(merged))
	for name, value := range merged {
		out = append(out, HiddenField{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
