// Package form holds the session state for one rendered form.
//
// A Controller mounts the field tree for the root schema, receives the root's
// full document after every edit, and re-validates the entire document each
// time. Submit validates again and reports through the submit or error
// callback; with no error callback the errors go to the logger.
package form
