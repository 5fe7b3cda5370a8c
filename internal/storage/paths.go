// ABOUTME: Standard data directory resolution.
// ABOUTME: Follows XDG_DATA_HOME with a ~/.local/share fallback.
package storage

import (
	"os"
	"path/filepath"
)

// DataDir returns the default data directory for the lift tool.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lift")
}
