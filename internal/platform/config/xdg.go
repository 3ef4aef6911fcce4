package config

import (
	"os"
	"path/filepath"
)

// DefaultDataPath returns $XDG_DATA_HOME/examprep, falling back to
// ~/.local/share/examprep.
func DefaultDataPath() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "examprep")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".examprep")
	}
	return filepath.Join(home, ".local", "share", "examprep")
}
