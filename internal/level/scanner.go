package level

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry represents a discoverable level file in the levels directory.
type Entry struct {
	Name string // Display name (file name without extension)
	Path string // Full path to the level file
}

// ScanLevels scans a directory for level files.
// Returns one Entry per .txt file, in directory order.
func ScanLevels(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var levels []Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), ".txt") {
			continue
		}

		levels = append(levels, Entry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	return levels, nil
}
