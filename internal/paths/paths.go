// Package paths resolves OS-appropriate locations for the runner's files.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "manage"

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory, where
// application-managed data (log, invocation history) lives.
//   - macOS: ~/Library/Application Support/manage
//   - Linux: $XDG_DATA_HOME/manage or ~/.local/share/manage
//   - Windows: %LOCALAPPDATA%\manage
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	path := filepath.Join(base, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// LogFilePath returns the path of the operator log file.
func LogFilePath() string {
	return filepath.Join(AppLocalDataDir(), "manage.log")
}

// DBFilePath returns the path of the invocation history database.
func DBFilePath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
