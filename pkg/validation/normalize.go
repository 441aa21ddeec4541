package validation

import (
	json "github.com/goccy/go-json"
)

// Normalize round-trips a document through JSON so Go-native values (ints,
// typed slices, structs) validate the way their JSON encoding would.
func Normalize(document any) (any, error) {
	payload, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
