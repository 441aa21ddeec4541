package validation

import (
	"sort"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// OpenAPIValidator validates documents with kin-openapi's schema visitor.
// It keeps the conversion of the last root it saw; a controller validates one
// schema for its whole life, and switching roots only replaces the entry.
type OpenAPIValidator struct {
	mu       sync.Mutex
	root     *schema.Node
	compiled *openapi3.Schema
}

var _ Validator = (*OpenAPIValidator)(nil)

// NewOpenAPI constructs the default validator.
func NewOpenAPI() *OpenAPIValidator {
	return &OpenAPIValidator{}
}

// Validate implements Validator.
func (v *OpenAPIValidator) Validate(document any, root *schema.Node) []Error {
	if root == nil {
		return nil
	}
	normalized, err := Normalize(document)
	if err != nil {
		return []Error{NewError("", "document is not JSON encodable: "+err.Error())}
	}

	compiled := v.compiled(root)
	if err := compiled.VisitJSON(normalized, openapi3.MultiErrors()); err != nil {
		var out []Error
		collectOpenAPIErrors(err, &out)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Path < out[j].Path
		})
		return out
	}
	return nil
}

func (v *OpenAPIValidator) compiled(root *schema.Node) *openapi3.Schema {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.root == root && v.compiled != nil {
		return v.compiled
	}
	v.root = root
	v.compiled = ToOpenAPISchema(root)
	return v.compiled
}

func collectOpenAPIErrors(err error, out *[]Error) {
	switch typed := err.(type) {
	case nil:
		return
	case openapi3.MultiError:
		for _, nested := range typed {
			collectOpenAPIErrors(nested, out)
		}
	case *openapi3.SchemaError:
		*out = append(*out, NewError(PointerFromSegments(typed.JSONPointer()), typed.Reason))
	default:
		*out = append(*out, NewError("", err.Error()))
	}
}

// ToOpenAPISchema converts a node tree into the kin-openapi representation.
// date-time validates as a formatted string; unknown types carry no type
// constraint so the rest of the document can still be checked.
func ToOpenAPISchema(node *schema.Node) *openapi3.Schema {
	out := &openapi3.Schema{}
	if node == nil {
		return out
	}

	switch node.Type {
	case schema.TypeString, schema.TypeNumber, schema.TypeBoolean, schema.TypeObject, schema.TypeArray:
		out.Type = &openapi3.Types{string(node.Type)}
		out.Format = node.Format
	case schema.TypeDateTime:
		out.Type = &openapi3.Types{openapi3.TypeString}
		out.Format = "date-time"
	}

	if len(node.Enum) > 0 {
		out.Enum = append([]any(nil), node.Enum...)
	}
	if len(node.Required) > 0 {
		out.Required = append([]string(nil), node.Required...)
	}
	if len(node.Properties) > 0 {
		out.Properties = make(openapi3.Schemas, len(node.Properties))
		for _, prop := range node.Properties {
			out.Properties[prop.Name] = openapi3.NewSchemaRef("", ToOpenAPISchema(prop.Schema))
		}
	}
	if node.Items != nil {
		out.Items = openapi3.NewSchemaRef("", ToOpenAPISchema(node.Items))
	}
	if node.MinLength != nil && *node.MinLength > 0 {
		out.MinLength = uint64(*node.MinLength)
	}
	if node.MaxLength != nil && *node.MaxLength >= 0 {
		value := uint64(*node.MaxLength)
		out.MaxLength = &value
	}
	if node.Pattern != "" {
		out.Pattern = node.Pattern
	}
	if node.Minimum != nil {
		value := *node.Minimum
		out.Min = &value
	}
	if node.Maximum != nil {
		value := *node.Maximum
		out.Max = &value
	}
	if node.MinItems != nil && *node.MinItems > 0 {
		out.MinItems = uint64(*node.MinItems)
	}
	if node.MaxItems != nil && *node.MaxItems >= 0 {
		value := uint64(*node.MaxItems)
		out.MaxItems = &value
	}
	return out
}
