package form

import (
	"log/slog"

	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

// Option customises a Controller.
type Option func(*Controller)

// ChangeObserver receives the RFC 7386 merge patch between the previous and
// the next document after every accepted edit.
type ChangeObserver func(patch []byte, state SessionState)

// WithSeed supplies existing data. A non-empty seed opens the form in edit
// mode and validates it immediately.
func WithSeed(document any) Option {
	return func(c *Controller) {
		c.seed = document
		c.seeded = true
	}
}

// WithValidator replaces the default kin-openapi backed validator.
func WithValidator(v validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithOnChange registers the callback fired after every accepted edit.
func WithOnChange(fn func(SessionState)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithOnSubmit registers the callback fired when submit validation passes.
func WithOnSubmit(fn func(SessionState)) Option {
	return func(c *Controller) {
		c.onSubmit = fn
	}
}

// WithOnError registers the callback fired when submit validation fails.
// Without it the errors are logged.
func WithOnError(fn func([]validation.Error)) Option {
	return func(c *Controller) {
		c.onError = fn
	}
}

// WithChangeObserver registers a merge patch observer.
func WithChangeObserver(fn ChangeObserver) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// WithLogger sets the logger used for the default error channel.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFieldOptions forwards options to the mounted field tree.
func WithFieldOptions(opts ...fields.Option) Option {
	return func(c *Controller) {
		c.fieldOpts = append(c.fieldOpts, opts...)
	}
}
