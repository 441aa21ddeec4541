package schema

import "strings"

// Type is the value of a schema's "type" keyword. Unknown values are legal and
// are carried through untouched so the field resolver can report them.
type Type string

// Types understood by the field resolver.
const (
	TypeString   Type = "string"
	TypeNumber   Type = "number"
	TypeBoolean  Type = "boolean"
	TypeObject   Type = "object"
	TypeArray    Type = "array"
	TypeDateTime Type = "date-time"
)

// Property pairs an object property name with its subschema. Properties keep
// the order they were declared in.
type Property struct {
	Name   string
	Schema *Node
}

// Node describes the shape and constraints of one value in a form document.
// Nodes are treated as read-only once parsed; nothing in this module mutates a
// node after construction.
type Node struct {
	Type        Type
	Title       string
	Description string
	Format      string
	Default     any
	Enum        []any
	Properties  []Property
	Required    []string
	Items       *Node

	MinLength *int
	MaxLength *int
	Pattern   string
	Minimum   *float64
	Maximum   *float64
	MinItems  *int
	MaxItems  *int

	// raw keeps the source mapping (declaration order included) so the node
	// serializes back to what the author wrote.
	raw *orderedMap
}

// Property returns the subschema declared for name.
func (n *Node) Property(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	for _, prop := range n.Properties {
		if prop.Name == name {
			return prop.Schema, true
		}
	}
	return nil, false
}

// PropertyNames lists property names in declaration order.
func (n *Node) PropertyNames() []string {
	if n == nil || len(n.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.Properties))
	for _, prop := range n.Properties {
		names = append(names, prop.Name)
	}
	return names
}

// IsRequired reports whether name appears in the node's required list.
func (n *Node) IsRequired(name string) bool {
	if n == nil {
		return false
	}
	for _, candidate := range n.Required {
		if candidate == name {
			return true
		}
	}
	return false
}

// HasDefault reports whether the node declares a non-null default.
func (n *Node) HasDefault() bool {
	return n != nil && n.Default != nil
}

// HasEnum reports whether the node declares a non-empty enum.
func (n *Node) HasEnum() bool {
	return n != nil && len(n.Enum) > 0
}

// TypeName returns the trimmed type tag, or an empty string for a nil node.
func (n *Node) TypeName() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(string(n.Type))
}

// Extension returns a vendor keyword (for example "x-widget") as written in
// the source document. Nodes built in code have no extensions.
func (n *Node) Extension(key string) (any, bool) {
	if n == nil || n.raw == nil {
		return nil, false
	}
	value, ok := n.raw.get(key)
	if !ok {
		return nil, false
	}
	return plain(value), true
}
