// Package schema holds the schema node tree the form engine walks. Nodes are
// decoded from JSON or YAML with property declaration order preserved, carry
// only the keywords the engine and its validators need, and serialize back to
// the author's original key order for diagnostics.
package schema
