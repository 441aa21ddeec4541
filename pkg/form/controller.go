package form

import (
	"errors"
	"log/slog"

	jsonpatch "github.com/evanphx/json-patch/v5"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

// ErrNilSchema is returned by New when no root schema is supplied.
var ErrNilSchema = errors.New("form: root schema is required")

// Controller owns the whole document for one form session. It is driven by a
// single event stream and holds no locks.
type Controller struct {
	schema    *schema.Node
	validator validation.Validator
	logger    *slog.Logger
	fieldOpts []fields.Option

	seed     any
	seeded   bool
	onChange func(SessionState)
	onSubmit func(SessionState)
	onError  func([]validation.Error)
	observer ChangeObserver

	state        SessionState
	failedSubmit bool
	root         fields.Field
}

// New mounts root with the supplied options. The document starts from the
// seed, then the schema default, then an empty object.
func New(root *schema.Node, opts ...Option) (*Controller, error) {
	if root == nil {
		return nil, ErrNilSchema
	}
	c := &Controller{
		schema:    root,
		validator: validation.NewOpenAPI(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}

	edit := c.seeded && !isEmpty(c.seed)
	var document any
	switch {
	case edit:
		document = fields.Clone(c.seed)
	case root.HasDefault():
		document = fields.Clone(root.Default)
	default:
		document = map[string]any{}
	}

	c.state = SessionState{
		Status:   StatusInitial,
		Document: document,
		Edit:     edit,
	}
	if edit {
		c.state.Errors = c.validate(document)
	}
	c.root = fields.Mount(root, document, c.commit, c.fieldOpts...)
	return c, nil
}

// Schema returns the root schema.
func (c *Controller) Schema() *schema.Node { return c.schema }

// Root returns the mounted root field.
func (c *Controller) Root() fields.Field { return c.root }

// State returns a snapshot of the session.
func (c *Controller) State() SessionState { return c.state.snapshot() }

// Status returns the current status.
func (c *Controller) Status() Status { return c.state.Status }

// Errors returns the result of the last validation pass.
func (c *Controller) Errors() []validation.Error {
	return append([]validation.Error(nil), c.state.Errors...)
}

// Dispatch routes ev through the field tree. Events addressed to fields the
// schema does not render return an error and leave the session unchanged.
func (c *Controller) Dispatch(ev fields.Event) error {
	if ev == nil {
		return fields.ErrUnsupportedEvent
	}
	return c.root.Handle(ev.Target(), ev)
}

// Submit validates the whole document and reports the outcome through the
// submit or error callback. The returned slice is empty on success. Status is
// back to initial when Submit returns.
func (c *Controller) Submit() []validation.Error {
	c.state.Status = StatusSubmitted
	defer func() { c.state.Status = StatusInitial }()

	errs := c.validate(c.state.Document)
	c.state.Errors = errs
	if len(errs) > 0 {
		c.failedSubmit = true
		if c.onError != nil {
			c.onError(append([]validation.Error(nil), errs...))
		} else {
			c.logger.Error("Form validation failed", "errors", validation.Messages(errs))
		}
		return errs
	}

	c.failedSubmit = false
	if c.onSubmit != nil {
		c.onSubmit(c.state.snapshot())
	}
	return nil
}

// VisibleErrors is what the error summary should show right now: nothing
// while editing, otherwise the current errors when the session was opened in
// edit mode or the last submit failed.
func (c *Controller) VisibleErrors() []validation.Error {
	if c.state.Status == StatusEditing {
		return nil
	}
	if c.state.Edit || c.failedSubmit {
		return append([]validation.Error(nil), c.state.Errors...)
	}
	return nil
}

// commit receives the root field's full value after each edit.
func (c *Controller) commit(document any) {
	previous := c.state.Document

	c.state.Status = StatusEditing
	c.state.Document = document
	c.state.Errors = c.validate(document)
	c.failedSubmit = false

	if c.observer != nil {
		if patch, err := mergePatch(previous, document); err != nil {
			c.logger.Warn("form: merge patch failed", "error", err)
		} else {
			c.observer(patch, c.state.snapshot())
		}
	}
	if c.onChange != nil {
		c.onChange(c.state.snapshot())
	}
}

func (c *Controller) validate(document any) []validation.Error {
	errs := c.validator.Validate(document, c.schema)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func mergePatch(previous, next any) ([]byte, error) {
	before, err := json.Marshal(previous)
	if err != nil {
		return nil, err
	}
	after, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(before, after)
}

func isEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case map[string]any:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	case string:
		return typed == ""
	default:
		return false
	}
}
