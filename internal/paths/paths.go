// Package paths resolves the locations of the application's files.
package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "slashcmd"

// AppDataDir returns the application data directory for the log file and
// history database. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Restrictive permissions: the history db can contain command text.
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the key=value config file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".slashrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "slash.log")
}

// SchemaFilePath returns the default location of a user-supplied schema
// file, consulted when no --schema flag is given. The file is optional;
// callers fall back to the embedded demo schema when it does not exist.
func SchemaFilePath() string {
	return filepath.Join(AppDataDir(), "schema.json")
}
