package widgets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Decode converts raw user input for a control back into a document value.
// Text inputs on number schemas become float64 when they parse and stay
// strings otherwise, leaving the verdict to the validator. Select inputs map
// back to the enum entry with the same display label.
func Decode(control Control, node *schema.Node, raw string) any {
	switch control.Widget {
	case WidgetCheckbox:
		return decodeBool(raw)
	case WidgetSelect:
		if node != nil {
			for _, candidate := range node.Enum {
				if fmt.Sprint(candidate) == raw {
					return candidate
				}
			}
		}
		return raw
	default:
		if node != nil && node.Type == schema.TypeNumber {
			if number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				return number
			}
		}
		return raw
	}
}

func decodeBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "on", "true", "yes", "y", "checked":
		return true
	default:
		return false
	}
}
