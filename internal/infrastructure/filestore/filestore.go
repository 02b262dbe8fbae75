// Package filestore implements the local JSON file backends used when no
// remote storage is configured. Each store owns one file under the data
// directory and serializes every read-modify-write cycle behind its own
// mutex, so concurrent requests cannot lose updates.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// readFile loads the store file and returns its raw bytes. A missing or
// empty file is not an error — callers treat nil as an empty store,
// matching the create-on-demand layout.
func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// writeFile marshals the envelope and rewrites the whole store file,
// creating the data directory on demand.
func writeFile(path string, envelope interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
