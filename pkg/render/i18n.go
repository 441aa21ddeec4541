package render

import (
	"errors"
	"strings"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// ErrMissingTranslator is reported when a key is looked up without a
// translator configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Keys for the fixed strings every renderer draws.
const (
	KeyErrorsHeading = "schemaform.errors.heading"
	KeySubmit        = "schemaform.submit"
	KeyAddItem       = "schemaform.array.add"
	KeyRemoveItem    = "schemaform.array.remove"
)

// Chrome holds the localised fixed strings.
type Chrome struct {
	ErrorsHeading string
	Submit        string
	AddItem       string
	RemoveItem    string
}

// DefaultChrome is used when no translator is configured or a key is missing.
var DefaultChrome = Chrome{
	ErrorsHeading: ErrorHeading,
	Submit:        "Submit",
	AddItem:       "+",
	RemoveItem:    "-",
}

// LocalizeChrome resolves the fixed strings for opts.Locale, falling back to
// DefaultChrome entry by entry.
func LocalizeChrome(opts RenderOptions) Chrome {
	return Chrome{
		ErrorsHeading: translate(opts, KeyErrorsHeading, DefaultChrome.ErrorsHeading),
		Submit:        translate(opts, KeySubmit, DefaultChrome.Submit),
		AddItem:       translate(opts, KeyAddItem, DefaultChrome.AddItem),
		RemoveItem:    translate(opts, KeyRemoveItem, DefaultChrome.RemoveItem),
	}
}

func translate(opts RenderOptions, key, fallback string) string {
	if opts.Translator == nil {
		return fallback
	}
	msg, err := opts.Translator.Translate(opts.Locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
