package schema

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrEmptySchema is returned when the payload contains no document.
var ErrEmptySchema = errors.New("schema: document is empty")

// Parse decodes a JSON or YAML schema. Property declaration order is kept.
// Only malformed payloads fail; unknown "type" values and unknown keywords are
// accepted as-is.
func Parse(raw []byte) (*Node, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, ErrEmptySchema
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptySchema
	}

	value, err := decodeValue(doc.Content[0], "#")
	if err != nil {
		return nil, err
	}
	root, ok := value.(*orderedMap)
	if !ok {
		return nil, fmt.Errorf("schema: root must be an object at #")
	}
	return nodeFromMap(root, "#")
}

// MustParse panics when raw cannot be parsed. Useful for tests and fixtures.
func MustParse(raw string) *Node {
	node, err := Parse([]byte(raw))
	if err != nil {
		panic(err)
	}
	return node
}

func decodeValue(node *yaml.Node, path string) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeValue(node.Content[0], path)
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("schema: dangling alias at %s", path)
		}
		return decodeValue(node.Alias, path)
	case yaml.MappingNode:
		out := newOrderedMap()
		for idx := 0; idx+1 < len(node.Content); idx += 2 {
			key := node.Content[idx].Value
			value, err := decodeValue(node.Content[idx+1], path+"/"+escapePointer(key))
			if err != nil {
				return nil, err
			}
			out.set(key, value)
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for idx, child := range node.Content {
			value, err := decodeValue(child, fmt.Sprintf("%s/%d", path, idx))
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("schema: decode scalar at %s: %w", path, err)
		}
		return normalizeScalar(value), nil
	default:
		return nil, fmt.Errorf("schema: unexpected yaml node kind %d at %s", node.Kind, path)
	}
}

func normalizeScalar(value any) any {
	switch typed := value.(type) {
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case uint64:
		return float64(typed)
	case time.Time:
		return typed.Format(time.RFC3339)
	default:
		return typed
	}
}

func nodeFromMap(payload *orderedMap, path string) (*Node, error) {
	out := &Node{raw: payload}

	if value, ok := payload.get("type"); ok {
		if str, ok := value.(string); ok {
			out.Type = Type(strings.TrimSpace(str))
		}
	}
	out.Title = readString(payload, "title")
	out.Description = readString(payload, "description")
	out.Format = readString(payload, "format")
	out.Pattern = readString(payload, "pattern")

	if value, ok := payload.get("default"); ok {
		out.Default = plain(value)
	}
	if value, ok := payload.get("enum"); ok {
		if list, ok := value.([]any); ok {
			out.Enum = plain(list).([]any)
		}
	}
	if value, ok := payload.get("required"); ok {
		if list, ok := value.([]any); ok {
			for _, item := range list {
				if name, ok := item.(string); ok {
					out.Required = append(out.Required, name)
				}
			}
		}
	}

	out.MinLength = readInt(payload, "minLength")
	out.MaxLength = readInt(payload, "maxLength")
	out.MinItems = readInt(payload, "minItems")
	out.MaxItems = readInt(payload, "maxItems")
	out.Minimum = readFloat(payload, "minimum")
	out.Maximum = readFloat(payload, "maximum")

	if value, ok := payload.get("properties"); ok {
		props, ok := value.(*orderedMap)
		if !ok {
			return nil, fmt.Errorf("schema: properties must be an object at %s", path)
		}
		for _, name := range props.keys {
			childPath := path + "/properties/" + escapePointer(name)
			childMap, ok := props.values[name].(*orderedMap)
			if !ok {
				return nil, fmt.Errorf("schema: property schema must be an object at %s", childPath)
			}
			child, err := nodeFromMap(childMap, childPath)
			if err != nil {
				return nil, err
			}
			out.Properties = append(out.Properties, Property{Name: name, Schema: child})
		}
	}

	if value, ok := payload.get("items"); ok {
		itemsMap, ok := value.(*orderedMap)
		if !ok {
			return nil, fmt.Errorf("schema: items must be an object at %s", path)
		}
		items, err := nodeFromMap(itemsMap, path+"/items")
		if err != nil {
			return nil, err
		}
		out.Items = items
	}

	return out, nil
}

func readString(payload *orderedMap, key string) string {
	value, ok := payload.get(key)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return strings.TrimSpace(str)
}

func readFloat(payload *orderedMap, key string) *float64 {
	value, ok := payload.get(key)
	if !ok {
		return nil
	}
	number, ok := value.(float64)
	if !ok {
		return nil
	}
	return &number
}

func readInt(payload *orderedMap, key string) *int {
	number := readFloat(payload, key)
	if number == nil || *number != math.Trunc(*number) {
		return nil
	}
	value := int(*number)
	return &value
}

func escapePointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~", "~0")
	return strings.ReplaceAll(segment, "/", "~1")
}
