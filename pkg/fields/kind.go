package fields

import "github.com/goliatone/go-schemaform/pkg/schema"

// Kind names the component responsible for a subschema.
type Kind string

const (
	KindString      Kind = "string"
	KindBoolean     Kind = "boolean"
	KindObject      Kind = "object"
	KindArray       Kind = "array"
	KindUnsupported Kind = "unsupported"
)

// kinds maps schema type tags to field kinds. Anything missing resolves to
// KindUnsupported.
var kinds = map[schema.Type]Kind{
	schema.TypeString:   KindString,
	schema.TypeArray:    KindArray,
	schema.TypeBoolean:  KindBoolean,
	schema.TypeObject:   KindObject,
	schema.TypeDateTime: KindString,
	schema.TypeNumber:   KindString,
}

// Resolve returns the field kind for node. It never fails: nil nodes, absent
// types, and unknown types all yield KindUnsupported.
func Resolve(node *schema.Node) Kind {
	if node == nil {
		return KindUnsupported
	}
	if kind, ok := kinds[schema.Type(node.TypeName())]; ok {
		return kind
	}
	return KindUnsupported
}

type constructor func(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field

// constructors is the dispatch table used by mount. Every Kind has an entry.
var constructors map[Kind]constructor

func init() {
	constructors = map[Kind]constructor{
		KindString:      newStringField,
		KindBoolean:     newBooleanField,
		KindObject:      newObjectField,
		KindArray:       newArrayField,
		KindUnsupported: newUnsupportedField,
	}
}
