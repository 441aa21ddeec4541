package form

import (
	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

// SubmitLabel is the caption of the submit control.
const SubmitLabel = "Submit"

// FormView is everything a renderer needs to draw the form.
type FormView struct {
	Class       string             `json:"class"`
	Status      Status             `json:"status"`
	Errors      []validation.Error `json:"errors,omitempty"`
	Root        fields.View        `json:"root"`
	SubmitLabel string             `json:"submitLabel"`
}

// View snapshots the form for rendering. Errors holds only what should be
// displayed right now.
func (c *Controller) View() FormView {
	return FormView{
		Class:       "generic-form",
		Status:      c.state.Status,
		Errors:      c.VisibleErrors(),
		Root:        c.root.View(),
		SubmitLabel: SubmitLabel,
	}
}
