package validation

import (
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// GoJSONSchemaValidator validates documents with xeipuuv/gojsonschema. It
// exists alongside the kin-openapi validator so hosts can pick the engine
// whose error messages suit them.
type GoJSONSchemaValidator struct{}

var _ Validator = GoJSONSchemaValidator{}

// NewGoJSONSchema constructs the gojsonschema backed validator.
func NewGoJSONSchema() GoJSONSchemaValidator {
	return GoJSONSchemaValidator{}
}

// Validate implements Validator.
func (GoJSONSchemaValidator) Validate(document any, root *schema.Node) []Error {
	if root == nil {
		return nil
	}
	normalized, err := Normalize(document)
	if err != nil {
		return []Error{NewError("", "document is not JSON encodable: "+err.Error())}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(ExportSchema(root)),
		gojsonschema.NewGoLoader(normalized),
	)
	if err != nil {
		return []Error{NewError("", fmt.Sprintf("schema could not be evaluated: %v", err))}
	}
	if result.Valid() {
		return nil
	}

	out := make([]Error, 0, len(result.Errors()))
	for _, issue := range result.Errors() {
		pointer := pointerFromDotted(issue.Field())
		if issue.Type() == "required" {
			if property, ok := issue.Details()["property"].(string); ok && property != "" {
				pointer += PointerFromSegments([]string{property})
			}
		}
		out = append(out, NewError(pointer, issue.Description()))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// ExportSchema renders a node tree as a plain JSON Schema map suitable for
// generic validators. Types the engine renders but JSON Schema lacks are
// mapped (date-time) or dropped (unknown tags).
func ExportSchema(node *schema.Node) map[string]any {
	out := make(map[string]any)
	if node == nil {
		return out
	}

	switch node.Type {
	case schema.TypeString, schema.TypeNumber, schema.TypeBoolean, schema.TypeObject, schema.TypeArray:
		out["type"] = string(node.Type)
		if node.Format != "" {
			out["format"] = node.Format
		}
	case schema.TypeDateTime:
		out["type"] = "string"
		out["format"] = "date-time"
	}

	if len(node.Enum) > 0 {
		out["enum"] = append([]any(nil), node.Enum...)
	}
	if len(node.Required) > 0 {
		required := make([]any, 0, len(node.Required))
		for _, name := range node.Required {
			required = append(required, name)
		}
		out["required"] = required
	}
	if len(node.Properties) > 0 {
		props := make(map[string]any, len(node.Properties))
		for _, prop := range node.Properties {
			props[prop.Name] = ExportSchema(prop.Schema)
		}
		out["properties"] = props
	}
	if node.Items != nil {
		out["items"] = ExportSchema(node.Items)
	}
	if node.MinLength != nil {
		out["minLength"] = *node.MinLength
	}
	if node.MaxLength != nil {
		out["maxLength"] = *node.MaxLength
	}
	if node.Pattern != "" {
		out["pattern"] = node.Pattern
	}
	if node.Minimum != nil {
		out["minimum"] = *node.Minimum
	}
	if node.Maximum != nil {
		out["maximum"] = *node.Maximum
	}
	if node.MinItems != nil {
		out["minItems"] = *node.MinItems
	}
	if node.MaxItems != nil {
		out["maxItems"] = *node.MaxItems
	}
	return out
}
