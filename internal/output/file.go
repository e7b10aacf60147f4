// Package output writes generated datasets to disk.
package output

import (
	"os"
	"path/filepath"
)

// WriteFile replaces the content of path with data in a single write,
// creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
