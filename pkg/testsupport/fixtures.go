package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-schemaform/internal/schema/loader"
	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

// ProfileSchema exercises every field kind: scalars, an enum, a nested
// object, an array with an item heuristic, and an unsupported type.
const ProfileSchema = `{
  "type": "object",
  "title": "Profile",
  "description": "Tell us <em>about</em> you<script>alert(1)</script>",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "title": "Name", "description": "Full name"},
    "age": {"type": "number", "title": "Age"},
    "color": {"type": "string", "title": "Color", "enum": ["red", "green", "blue"]},
    "subscribed": {"type": "boolean", "title": "Subscribed", "description": "Send news"},
    "address": {
      "type": "object",
      "properties": {
        "city": {"type": "string", "title": "City"}
      }
    },
    "tags": {
      "type": "array",
      "title": "Tags",
      "items": {"type": "string", "title": "Tag", "minLength": 1}
    },
    "legacy": {"type": "frobnicate"}
  }
}`

// MustParseSchema parses an inline schema or fails the test.
func MustParseSchema(t *testing.T, raw string) *schema.Node {
	t.Helper()
	node, err := schema.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return node
}

// MustLoadSchema reads and parses a schema fixture.
func MustLoadSchema(t *testing.T, path string) *schema.Node {
	t.Helper()
	node, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return node
}

// LoadSchema reads a JSON or YAML schema file without requiring testing.T.
func LoadSchema(path string) (*schema.Node, error) {
	if path == "" {
		return nil, errors.New("testsupport: schema path is required")
	}
	node, err := loader.New().LoadNode(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		return nil, fmt.Errorf("testsupport: %w", err)
	}
	return node, nil
}

// MustLoadDocument decodes a JSON form document fixture.
func MustLoadDocument(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	return out
}

// Recorder captures controller callbacks.
type Recorder struct {
	Changes []form.SessionState
	Submits []form.SessionState
	Errors  [][]validation.Error
}

// Options wires the recorder into a controller.
func (r *Recorder) Options() []form.Option {
	return []form.Option{
		form.WithOnChange(func(s form.SessionState) { r.Changes = append(r.Changes, s) }),
		form.WithOnSubmit(func(s form.SessionState) { r.Submits = append(r.Submits, s) }),
		form.WithOnError(func(errs []validation.Error) { r.Errors = append(r.Errors, errs) }),
	}
}

// MustNewController mounts node or fails the test.
func MustNewController(t *testing.T, node *schema.Node, opts ...form.Option) *form.Controller {
	t.Helper()
	c, err := form.New(node, opts...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
