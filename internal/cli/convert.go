package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmcgrew/browsekit/internal/chromium"
)

// convertJSON is the JSON output structure for one converted value.
type convertJSON struct {
	Raw       string `json:"raw"`
	Converted bool   `json:"converted"`
	Result    string `json:"result"`
}

// Execute implements the go-flags Commander interface for ConvertCommand.
func (c *ConvertCommand) Execute(args []string) error {
	values := c.Args.Values
	if len(values) == 0 {
		return fmt.Errorf("at least one timestamp value is required")
	}

	var entries []convertJSON
	for _, raw := range values {
		ts := chromium.Convert(raw)
		entries = append(entries, convertJSON{
			Raw:       raw,
			Converted: ts.Converted(),
			Result:    ts.String(),
		})
	}

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		if e.Converted {
			fmt.Printf("%s -> %s\n", e.Raw, e.Result)
		} else {
			fmt.Printf("%s -> (not a Chromium timestamp, passed through)\n", e.Raw)
		}
	}
	return nil
}
