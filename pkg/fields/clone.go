package fields

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		return cloneSlice(typed)
	default:
		return typed
	}
}

func cloneMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneSlice(src []any) []any {
	out := make([]any, len(src))
	for idx, value := range src {
		out[idx] = cloneValue(value)
	}
	return out
}

// Clone deep-copies a document value. Maps and slices are copied; scalars
// are returned as is.
func Clone(value any) any {
	return cloneValue(value)
}
