package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON writes data as indented JSON
func WriteJSON(w io.Writer, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

// ReadFile reads the entire contents of a file. "-" reads from in.
func ReadFile(filepath string, in io.Reader) (string, error) {
	if filepath == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
