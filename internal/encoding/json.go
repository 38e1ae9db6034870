// Package encoding provides utilities for encoding and decoding persisted data.
package encoding

import (
	"encoding/json"
	"fmt"
)

// ParseJSON unmarshals JSON data into the provided type.
// Returns an error if parsing fails.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}

// ToJSON marshals a value to JSON bytes.
func ToJSON[T any](value T) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return data, nil
}

// ToJSONIndent marshals a value to indented JSON bytes.
func ToJSONIndent[T any](value T) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return data, nil
}
