package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateDir returns the daybook state directory. The DAYBOOK_STATE_DIR
// environment variable overrides the default.
func StateDir() (string, error) {
	if dir := os.Getenv("DAYBOOK_STATE_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "daybook"), nil
}

// ConfigPath returns the path to the global config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "daybook", "config.toml"), nil
}
