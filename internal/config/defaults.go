package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfig returns a Config populated with all default values: the
// default profiles of Chrome and Edge for the current user, CSVs written to
// the working directory.
func DefaultConfig() *Config {
	return &Config{
		Browsers: []Browser{
			{Name: "chrome", ProfileDir: DefaultProfileDir("chrome")},
			{Name: "edge", ProfileDir: DefaultProfileDir("edge")},
		},
		OutputDir:           ".",
		KeepSnapshots:       false,
		QueryTimeoutSeconds: 30,
	}
}

// DefaultProfileDir resolves the default-profile directory for a known
// browser on the current OS. Unknown browsers resolve to an empty string;
// the config file must then supply the path.
func DefaultProfileDir(browser string) string {
	return defaultProfileDir(browser, runtime.GOOS)
}

func defaultProfileDir(browser, goos string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch goos {
	case "windows":
		switch browser {
		case "chrome":
			return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default")
		case "edge":
			return filepath.Join(home, "AppData", "Local", "Microsoft", "Edge", "User Data", "Default")
		}
	case "darwin":
		switch browser {
		case "chrome":
			return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default")
		case "edge":
			return filepath.Join(home, "Library", "Application Support", "Microsoft Edge", "Default")
		}
	default:
		switch browser {
		case "chrome":
			return filepath.Join(home, ".config", "google-chrome", "Default")
		case "edge":
			return filepath.Join(home, ".config", "microsoft-edge", "Default")
		}
	}
	return ""
}
