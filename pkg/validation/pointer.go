package validation

import "strings"

// PointerFromSegments joins raw document path segments into a JSON pointer.
func PointerFromSegments(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, segment := range segments {
		builder.WriteByte('/')
		segment = strings.ReplaceAll(segment, "~", "~0")
		builder.WriteString(strings.ReplaceAll(segment, "/", "~1"))
	}
	return builder.String()
}

// SegmentsFromPointer splits a JSON pointer (optionally prefixed with "#")
// into unescaped segments.
func SegmentsFromPointer(pointer string) []string {
	trimmed := strings.TrimSpace(pointer)
	trimmed = strings.TrimPrefix(trimmed, "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		out = append(out, strings.ReplaceAll(part, "~0", "~"))
	}
	return out
}

func normalizePointer(pointer string) string {
	return PointerFromSegments(SegmentsFromPointer(pointer))
}

func fieldPathFromPointer(pointer string) string {
	segments := SegmentsFromPointer(pointer)
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, ".")
}

// pointerFromDotted converts gojsonschema style field paths ("(root)",
// "tags.0.name") into JSON pointers.
func pointerFromDotted(field string) string {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" || trimmed == "(root)" {
		return ""
	}
	trimmed = strings.TrimPrefix(trimmed, "(root).")
	return PointerFromSegments(strings.Split(trimmed, "."))
}
