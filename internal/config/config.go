package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/browsekit/config.yaml"

// Config holds all browsekit configuration.
type Config struct {
	// Browsers lists the profiles to extract from, in order. The first
	// browser's rows lead in combined outputs; later browsers follow in
	// list order.
	Browsers []Browser `yaml:"browsers"`

	// OutputDir receives the per-browser and combined CSV files.
	OutputDir string `yaml:"output_dir"`

	// KeepSnapshots leaves the .backup store copies on disk after the run
	// instead of removing them.
	KeepSnapshots bool `yaml:"keep_snapshots"`

	// QueryTimeoutSeconds bounds each store copy-and-query step. A browser
	// holding its database locked counts as an inaccessible store once the
	// timeout elapses.
	QueryTimeoutSeconds int `yaml:"query_timeout_seconds"`
}

// Browser identifies one configured extraction source.
type Browser struct {
	// Name tags this browser's rows in combined outputs and prefixes its
	// per-browser CSV files.
	Name string `yaml:"name"`

	// ProfileDir is the profile directory holding the History and Bookmarks
	// stores and the Network/Cookies database.
	ProfileDir string `yaml:"profile_dir"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the extraction run depends on.
func (c *Config) Validate() error {
	if len(c.Browsers) < 2 {
		return fmt.Errorf("config: at least two browsers are required, got %d", len(c.Browsers))
	}
	seen := make(map[string]bool, len(c.Browsers))
	for i, b := range c.Browsers {
		if b.Name == "" {
			return fmt.Errorf("config: browser %d has no name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("config: duplicate browser name %q", b.Name)
		}
		seen[b.Name] = true
		if b.ProfileDir == "" {
			return fmt.Errorf("config: browser %q has no profile_dir", b.Name)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir must not be empty")
	}
	if c.QueryTimeoutSeconds <= 0 {
		return fmt.Errorf("config: query_timeout_seconds must be positive")
	}
	return nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}
