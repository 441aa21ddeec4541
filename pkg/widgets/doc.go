// Package widgets describes the primitive editing controls (text, checkbox,
// select) as plain data. Each builder is a pure function of the current value
// and the constraints handed down by a scalar field; a registry picks the
// builder for a subschema.
package widgets
