package schema

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON serializes the node. Parsed nodes reproduce their source keys in
// declaration order; nodes built in code use a fixed keyword order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	if n.raw != nil {
		return json.Marshal(n.raw)
	}
	return json.Marshal(n.toOrderedMap())
}

// String returns the JSON form of the node, or an empty object on failure.
func (n *Node) String() string {
	payload, err := n.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(payload)
}

func (n *Node) toOrderedMap() *orderedMap {
	out := newOrderedMap()
	if n.Type != "" {
		out.set("type", string(n.Type))
	}
	if n.Title != "" {
		out.set("title", n.Title)
	}
	if n.Description != "" {
		out.set("description", n.Description)
	}
	if n.Format != "" {
		out.set("format", n.Format)
	}
	if n.Default != nil {
		out.set("default", n.Default)
	}
	if len(n.Enum) > 0 {
		out.set("enum", n.Enum)
	}
	if len(n.Properties) > 0 {
		props := newOrderedMap()
		for _, prop := range n.Properties {
			props.set(prop.Name, prop.Schema)
		}
		out.set("properties", props)
	}
	if len(n.Required) > 0 {
		out.set("required", n.Required)
	}
	if n.Items != nil {
		out.set("items", n.Items)
	}
	if n.MinLength != nil {
		out.set("minLength", *n.MinLength)
	}
	if n.MaxLength != nil {
		out.set("maxLength", *n.MaxLength)
	}
	if n.Pattern != "" {
		out.set("pattern", n.Pattern)
	}
	if n.Minimum != nil {
		out.set("minimum", *n.Minimum)
	}
	if n.Maximum != nil {
		out.set("maximum", *n.Maximum)
	}
	if n.MinItems != nil {
		out.set("minItems", *n.MinItems)
	}
	if n.MaxItems != nil {
		out.set("maxItems", *n.MaxItems)
	}
	return out
}
