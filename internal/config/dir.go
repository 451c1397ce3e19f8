// Package config provides the chime configuration directory and persisted settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the chime configuration directory.
//
// Resolution:
//   - $CHIME_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/chime if set (respects XDG on any platform)
//   - %AppData%/chime on Windows
//   - ~/.config/chime on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("CHIME_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chime")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "chime")
		}
	}

	// macOS and Linux: ~/.config/chime
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chime")
}

// AlarmsDir returns the directory holding persisted alarm files.
func AlarmsDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "alarms")
}
