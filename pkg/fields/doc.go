// Package fields mounts a schema into a tree of editable fields.
//
// Resolve maps a subschema's type to a field kind through a fixed table with
// an unsupported placeholder as the default case. Object and array fields own
// their slice of the document and recurse into Mount for every child; a child
// edit is merged into the owning composite before the composite reports its
// full value to its own parent, one level at a time, up to the root callback.
package fields
