package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when every submit attempt failed
	// validation.
	ErrTooManyAttempts = errors.New("tui: submit failed validation too many times")
)
