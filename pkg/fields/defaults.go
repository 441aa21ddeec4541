package fields

import "github.com/goliatone/go-schemaform/pkg/schema"

// DefaultItem synthesizes the value appended by ArrayField.Add. A declared
// default wins (returned as a copy, the schema is never shared); otherwise the
// value depends on the item type and is nil for types without a natural empty
// value.
func DefaultItem(items *schema.Node) any {
	if items == nil {
		return nil
	}
	if items.HasDefault() {
		return cloneValue(items.Default)
	}
	switch items.Type {
	case schema.TypeString:
		return ""
	case schema.TypeArray:
		return []any{}
	case schema.TypeBoolean:
		return false
	case schema.TypeObject:
		return map[string]any{}
	default:
		return nil
	}
}

// IsItemRequired marks array items required only when they are strings with a
// positive minLength. Object properties use the schema's required list
// instead; the two rules intentionally differ.
func IsItemRequired(items *schema.Node) bool {
	return items != nil &&
		items.Type == schema.TypeString &&
		items.MinLength != nil &&
		*items.MinLength > 0
}
