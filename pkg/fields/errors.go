package fields

import "errors"

var (
	// ErrPathNotFound is returned when an event addresses a field the schema
	// does not render.
	ErrPathNotFound = errors.New("fields: path not found")
	// ErrUnsupportedEvent is returned when the addressed field cannot handle
	// the event kind (for example Add on a string field).
	ErrUnsupportedEvent = errors.New("fields: event not supported")
	// ErrIndexOutOfRange is returned for array positions outside the list.
	ErrIndexOutOfRange = errors.New("fields: index out of range")
)
