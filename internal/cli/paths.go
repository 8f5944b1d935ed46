package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmcgrew/browsekit/internal/chromium"
)

// pathJSON is the JSON output structure for one resolved store path.
type pathJSON struct {
	Browser string `json:"browser"`
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
}

// Execute implements the go-flags Commander interface for PathsCommand.
func (c *PathsCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var entries []pathJSON
	for _, browser := range cfg.Browsers {
		for _, art := range chromium.Artifacts() {
			path := art.StorePath(browser.ProfileDir)
			_, statErr := os.Stat(path)
			entries = append(entries, pathJSON{
				Browser: browser.Name,
				Kind:    string(art.Kind),
				Path:    path,
				Exists:  statErr == nil,
			})
		}
	}

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		marker := " "
		if e.Exists {
			marker = "*"
		}
		fmt.Printf("%s %-10s %-10s %s\n", marker, e.Browser, e.Kind, e.Path)
	}
	fmt.Println()
	fmt.Println("* = store present")
	return nil
}
