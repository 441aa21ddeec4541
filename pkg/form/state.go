package form

import (
	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

// Status is the controller's position in the edit/submit cycle.
type Status string

const (
	StatusInitial   Status = "initial"
	StatusEditing   Status = "editing"
	StatusSubmitted Status = "submitted"
)

// SessionState is the snapshot handed to callbacks. Document is a deep copy;
// callers may keep or mutate it freely.
type SessionState struct {
	Status   Status             `json:"status"`
	Document any                `json:"document"`
	Edit     bool               `json:"edit"`
	Errors   []validation.Error `json:"errors,omitempty"`
}

func (s SessionState) snapshot() SessionState {
	out := s
	out.Document = fields.Clone(s.Document)
	if s.Errors != nil {
		out.Errors = append([]validation.Error(nil), s.Errors...)
	}
	return out
}

// HasErrors reports whether the last validation pass produced errors.
func (s SessionState) HasErrors() bool {
	return len(s.Errors) > 0
}
