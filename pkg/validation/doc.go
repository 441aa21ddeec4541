// Package validation adapts JSON Schema validators to the form engine. A
// Validator takes the whole document and the root schema node and returns an
// ordered slice of Error values; the engine never inspects how the check is
// performed. The default implementation uses kin-openapi, an alternative uses
// gojsonschema.
package validation
