package fields

import (
	"strconv"
	"strings"
)

// Path addresses a field inside the document: property names for objects and
// decimal indices for arrays. The empty path is the root.
type Path []string

// ParsePath accepts JSON pointers ("/owner/email") and dotted paths
// ("owner.email", "tags.0"). Empty input and "#" address the root.
func ParsePath(raw string) Path {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "#")
	if trimmed == "" || trimmed == "/" || trimmed == "." {
		return nil
	}
	if strings.HasPrefix(trimmed, "/") {
		parts := strings.Split(trimmed[1:], "/")
		out := make(Path, 0, len(parts))
		for _, part := range parts {
			part = strings.ReplaceAll(part, "~1", "/")
			out = append(out, strings.ReplaceAll(part, "~0", "~"))
		}
		return out
	}
	return Path(strings.Split(trimmed, "."))
}

// Child returns a new path with segment appended; p is not modified.
func (p Path) Child(segment string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}

// Index returns a new path with an array index appended.
func (p Path) Index(idx int) Path {
	return p.Child(strconv.Itoa(idx))
}

// String renders the dotted form used by views and validation errors.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// IsRoot reports whether p addresses the root field.
func (p Path) IsRoot() bool {
	return len(p) == 0
}
