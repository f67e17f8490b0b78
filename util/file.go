package util

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveJson writes data as indented JSON, creating parent directories if
// needed. The file is fully overwritten.
func SaveJson(path string, data interface{}) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	bs, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, bs, 0644)
}
