// Package config resolves the curve2svg configuration directory and loads
// export defaults from it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the configuration subdirectory.
const appName = "curve2svg"

// Dir returns the curve2svg configuration directory.
//
// Resolution:
//   - $CURVE2SVG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/curve2svg if set (respects XDG on any platform)
//   - %AppData%/curve2svg on Windows
//   - ~/.config/curve2svg on macOS and Linux
func Dir() string {
	if dir := os.Getenv("CURVE2SVG_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultPath returns the settings file inside Dir, or "" when no
// directory can be resolved.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
