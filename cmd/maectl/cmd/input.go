package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// readInput reads path, or stdin when path is "-".
func readInput(in io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(in)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// decodeDocument decodes YAML or JSON into dst using dst's json tags. YAML
// is a superset of JSON, so both go through the YAML parser and are
// re-encoded as JSON.
func decodeDocument(data []byte, dst any) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("document is empty")
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting document: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	return nil
}
