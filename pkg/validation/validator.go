package validation

import (
	"strings"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Error identifies where in a form document a schema constraint is violated.
// Errors are values: validators produce a fresh slice on every pass.
type Error struct {
	// Path is a JSON pointer into the document ("" for the root).
	Path string `json:"path"`
	// Field is the dotted form of Path, matching the field paths used by views.
	Field string `json:"field,omitempty"`
	// Message is the validator's reason, without location prefix.
	Message string `json:"message"`
	// Stack is the single-line summary shown in error lists.
	Stack string `json:"stack"`
}

func (e Error) Error() string {
	return e.Stack
}

// Validator checks a whole document against the root schema and returns the
// violations in a stable order. Implementations must be pure and synchronous.
type Validator interface {
	Validate(document any, root *schema.Node) []Error
}

// Func adapts a plain function to the Validator interface.
type Func func(document any, root *schema.Node) []Error

// Validate calls f.
func (f Func) Validate(document any, root *schema.Node) []Error {
	if f == nil {
		return nil
	}
	return f(document, root)
}

// NewError builds an Error from a pointer and message, filling Field and Stack.
func NewError(pointer, message string) Error {
	pointer = normalizePointer(pointer)
	field := fieldPathFromPointer(pointer)
	message = strings.TrimSpace(message)
	return Error{
		Path:    pointer,
		Field:   field,
		Message: message,
		Stack:   stackLine(field, message),
	}
}

// Messages returns the Stack line of every error, in order.
func Messages(errs []Error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Stack)
	}
	return out
}

func stackLine(field, message string) string {
	subject := "instance"
	if field != "" {
		subject += "." + field
	}
	if message == "" {
		return subject
	}
	return subject + ": " + message
}
